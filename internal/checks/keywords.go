package checks

import (
	"fmt"
	"strings"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
)

// CheckKeywordPlacement verifies the focus keyword appears in the title and
// the opening paragraph, and that it is not stuffed beyond the configured
// density. Skipped when no keyword property is configured or the note has
// none.
func CheckKeywordPlacement(doc domain.Document, cfg *config.Config) []domain.Finding {
	if cfg.Properties.Keyword == "" {
		return nil
	}
	fm, _ := extractor.SplitFrontmatter(doc.Content)
	keyword := strings.TrimSpace(fm.Get(cfg.Properties.Keyword))
	if keyword == "" {
		return nil
	}
	lowerKeyword := strings.ToLower(keyword)

	var findings []domain.Finding

	if strings.Contains(strings.ToLower(doc.Title), lowerKeyword) {
		findings = append(findings, domain.Finding{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("keyword %q appears in the title", keyword),
		})
	} else {
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("keyword %q is missing from the title", keyword),
			Suggestion: "work the focus keyword into the title",
		})
	}

	paragraphs := extractor.ExtractParagraphs(doc.Content)
	if len(paragraphs) > 0 {
		if strings.Contains(strings.ToLower(paragraphs[0]), lowerKeyword) {
			findings = append(findings, domain.Finding{
				Passed:   true,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("keyword %q appears in the opening paragraph", keyword),
			})
		} else {
			findings = append(findings, domain.Finding{
				Severity:   domain.SeverityNotice,
				Message:    fmt.Sprintf("keyword %q is missing from the opening paragraph", keyword),
				Suggestion: "mention the focus keyword early in the note",
			})
		}
	}

	_, body := extractor.SplitFrontmatter(doc.Content)
	words := strings.Fields(strings.ToLower(body))
	if len(words) > 0 && cfg.Checks.MaxKeywordDensity > 0 {
		occurrences := strings.Count(strings.ToLower(body), lowerKeyword)
		density := float64(occurrences) / float64(len(words)) * 100
		if density > cfg.Checks.MaxKeywordDensity {
			findings = append(findings, domain.Finding{
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("keyword density %.1f%% exceeds the %.1f%% maximum", density, cfg.Checks.MaxKeywordDensity),
				Suggestion: "reduce keyword repetition; it reads as stuffing",
			})
		} else {
			findings = append(findings, domain.Finding{
				Passed:   true,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("keyword density %.1f%% is within bounds", density),
			})
		}
	}

	return findings
}
