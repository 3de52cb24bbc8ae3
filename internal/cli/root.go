package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notelint/config"
	"notelint/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "notelint",
	Short: "Content and SEO linting for markdown note vaults",
	Long: `notelint scans a vault of markdown notes and reports style and SEO
issues: missing alt text, naked links, heading-order violations, duplicate
titles, descriptions and near-duplicate paragraphs, content-length and
reading-level thresholds, keyword placement, and image naming.

Example usage:
  notelint scan .                # Lint the whole vault
  notelint check notes/post.md   # Lint a single note
  notelint cache stats           # Inspect the result cache`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if verbose {
			cfg.Logging.Verbose = true
		}
		logger.SetVerbose(cfg.Logging.Verbose)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./notelint.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "vault root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
