package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"notelint/internal/domain"
	"notelint/internal/usecase"
)

var (
	errColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	noticeColor = color.New(color.FgCyan)
	passColor   = color.New(color.FgGreen)
	pathColor   = color.New(color.Bold)
)

// printReport renders a batch scan to stdout, one section per note with
// issues (or per note at all with showPassing), then a summary line.
func printReport(result *usecase.ScanResult, showPassing bool) {
	totalScore := 0
	flagged := 0

	for _, r := range result.Results {
		totalScore += r.Score

		hasIssues := r.IssuesCount+r.WarningsCount+r.NoticesCount > 0
		if !hasIssues && !showPassing {
			continue
		}
		flagged++

		pathColor.Printf("%s", r.Path)
		fmt.Printf("  (score %d)\n", r.Score)
		printFindings(r, showPassing)
		fmt.Println()
	}

	if flagged == 0 {
		passColor.Println("No issues found.")
	}

	avg := totalScore / len(result.Results)
	fmt.Printf("%d notes scanned, average score %d, %d cache hits\n",
		len(result.Results), avg, result.CacheHits)
	if len(result.Skipped) > 0 {
		warnColor.Printf("%d unreadable notes skipped: %v\n", len(result.Skipped), result.Skipped)
	}
}

func printFindings(r *domain.CheckResult, showPassing bool) {
	names := make([]string, 0, len(r.Checks))
	for name := range r.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, f := range r.Checks[name] {
			if f.Passed && !showPassing {
				continue
			}
			label, c := severityLabel(f)
			c.Printf("  %-7s", label)
			fmt.Printf(" [%s] %s", name, f.Message)
			if f.Position != nil && f.Position.Line > 0 {
				fmt.Printf(" (line %d)", f.Position.Line)
			}
			fmt.Println()
			if f.Suggestion != "" && !f.Passed {
				fmt.Printf("          %s\n", f.Suggestion)
			}
		}
	}
}

func severityLabel(f domain.Finding) (string, *color.Color) {
	if f.Passed {
		return "pass", passColor
	}
	switch f.Severity {
	case domain.SeverityError:
		return "error", errColor
	case domain.SeverityWarning:
		return "warning", warnColor
	default:
		return string(f.Severity), noticeColor
	}
}
