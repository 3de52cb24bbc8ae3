package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notelint/config"
	"notelint/internal/adapter/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent result cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show result cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openCacheStore()
		if err != nil {
			return err
		}
		defer st.Close()

		count, err := st.Count()
		if err != nil {
			return err
		}
		fmt.Printf("cached results: %d\n", count)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [path]",
	Short: "Clear cached results, or one note's cached result",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openCacheStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			if err := st.DeleteEntry(args[0]); err != nil {
				return err
			}
			fmt.Printf("cleared cached result for %s\n", args[0])
			return nil
		}

		if err := st.Clear(); err != nil {
			return err
		}
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openCacheStore() (*store.BoltCacheStore, error) {
	dbPath := config.CacheDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("no cache database at %s", dbPath)
	}
	return store.NewBoltCacheStore(dbPath)
}
