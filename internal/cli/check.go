package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <note>",
	Short: "Lint a single note against the vault",
	Long: `Check one note. The corpus index is still built over the whole vault so
duplicate detection sees every other note.

Examples:
  notelint check notes/post.md
  notelint check -d ~/vault drafts/idea.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the result as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	vault := GetRootDir()
	cfg := GetConfig()

	// Accept both vault-relative and absolute/cwd-relative note paths.
	notePath := filepath.ToSlash(args[0])
	if abs, err := filepath.Abs(args[0]); err == nil {
		if rel, err := filepath.Rel(vault, abs); err == nil && !strings.HasPrefix(rel, "..") {
			if _, statErr := os.Stat(abs); statErr == nil {
				notePath = filepath.ToSlash(rel)
			}
		}
	}

	scanner, resultCache, cacheStore, err := buildScanner(vault, cfg)
	if err != nil {
		return err
	}
	if cacheStore != nil {
		defer cacheStore.Close()
	}

	result, err := scanner.ScanOne(cmd.Context(), notePath)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	if result == nil {
		return fmt.Errorf("note %s is not part of the vault scan scope", notePath)
	}

	if cacheStore != nil {
		flushCache(resultCache, cacheStore)
	}

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	pathColor.Printf("%s", result.Path)
	fmt.Printf("  (score %d)\n", result.Score)
	printFindings(result, true)
	return nil
}
