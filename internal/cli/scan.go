package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"notelint/config"
	"notelint/internal/adapter/analyzer"
	"notelint/internal/adapter/cache"
	"notelint/internal/adapter/fs"
	"notelint/internal/adapter/store"
	"notelint/internal/logger"
	"notelint/internal/usecase"
)

var (
	scanJSON     bool
	scanAll      bool
	scanMinScore int
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Lint every note in the vault",
	Long: `Scan the vault, build the corpus index once, and lint each note against
it, including vault-wide duplicate detection. Results are cached and reused
while content and settings stay unchanged.

Examples:
  notelint scan .                  # Scan current directory
  notelint scan ~/vault --json     # Machine-readable output
  notelint scan . --min-score 70   # Fail if any note scores below 70`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit results as JSON")
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "show passing checks too")
	scanCmd.Flags().IntVar(&scanMinScore, "min-score", 0, "exit nonzero when any note scores below this")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	scanner, resultCache, cacheStore, err := buildScanner(path, cfg)
	if err != nil {
		return err
	}
	if cacheStore != nil {
		defer cacheStore.Close()
	}

	var bar *progressbar.ProgressBar
	progress := func(done, total int, current string) {
		if scanJSON {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Scanning"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := scanner.ScanAll(cmd.Context(), progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if cacheStore != nil {
		flushCache(resultCache, cacheStore)
	}

	if len(result.Results) == 0 {
		return fmt.Errorf("0 documents found in %s", path)
	}

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Results)
	}

	printReport(result, scanAll)

	if scanMinScore > 0 {
		for _, r := range result.Results {
			if r.Score < scanMinScore {
				return fmt.Errorf("%s scored %d, below the %d minimum", r.Path, r.Score, scanMinScore)
			}
		}
	}
	return nil
}

// buildScanner wires the document source, tokenizer and result cache for a
// vault, seeding the cache from the persistent store when enabled.
func buildScanner(path string, cfg *config.Config) (*usecase.Scanner, *cache.ResultCache, *store.BoltCacheStore, error) {
	source := fs.NewVaultSource(path, cfg.Scan.Includes, cfg.Scan.Excludes)
	tokenizer := analyzer.NewTokenizer()
	resultCache := cache.NewResultCache(cfg.Cache.MaxEntries, cfg.CacheTTL())

	var cacheStore *store.BoltCacheStore
	if cfg.Cache.Persist {
		if err := config.EnsureStateDir(path); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create .notelint directory: %w", err)
		}
		var err error
		cacheStore, err = store.NewBoltCacheStore(config.CacheDBPath(path))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open cache store: %w", err)
		}
		entries, err := cacheStore.ListEntries()
		if err != nil {
			logger.Warn("could not load persisted cache: %v", err)
		} else {
			resultCache.Seed(entries)
		}
	}

	return usecase.NewScanner(source, resultCache, tokenizer, cfg), resultCache, cacheStore, nil
}

// flushCache writes the in-memory cache back to the persistent store. A
// flush failure costs recomputation next run, nothing more.
func flushCache(resultCache *cache.ResultCache, cacheStore *store.BoltCacheStore) {
	for _, e := range resultCache.Export() {
		if err := cacheStore.PutEntry(e); err != nil {
			logger.Warn("could not persist cache entry for %s: %v", e.Path, err)
			return
		}
	}
}
