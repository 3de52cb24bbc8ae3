package checks

import (
	"fmt"
	"strings"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
)

// CheckTitleLength compares the resolved title against the configured
// min/max. Skipped for documents without a title.
func CheckTitleLength(doc domain.Document, cfg *config.Config) []domain.Finding {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		return nil
	}
	return lengthFinding("title", len(title), cfg.Checks.TitleMin, cfg.Checks.TitleMax)
}

// CheckDescriptionLength compares the frontmatter description against the
// configured min/max. Skipped when no description property is configured or
// present.
func CheckDescriptionLength(doc domain.Document, cfg *config.Config) []domain.Finding {
	if cfg.Properties.Description == "" {
		return nil
	}
	desc := strings.TrimSpace(doc.Description)
	if desc == "" {
		return nil
	}
	return lengthFinding("description", len(desc), cfg.Checks.DescriptionMin, cfg.Checks.DescriptionMax)
}

func lengthFinding(field string, length, min, max int) []domain.Finding {
	switch {
	case min > 0 && length < min:
		return []domain.Finding{{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("%s is %d characters, under the %d minimum", field, length, min),
			Suggestion: fmt.Sprintf("expand the %s", field),
		}}
	case max > 0 && length > max:
		return []domain.Finding{{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("%s is %d characters, over the %d maximum", field, length, max),
			Suggestion: fmt.Sprintf("shorten the %s", field),
		}}
	default:
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("%s length %d is within range", field, length),
		}}
	}
}

// CheckContentLength flags notes whose prose body falls under the minimum
// word count.
func CheckContentLength(doc domain.Document, cfg *config.Config) []domain.Finding {
	if cfg.Checks.MinWordCount <= 0 {
		return nil
	}

	_, body := extractor.SplitFrontmatter(doc.Content)
	words := len(strings.Fields(body))

	if words < cfg.Checks.MinWordCount {
		return []domain.Finding{{
			Severity:   domain.SeverityNotice,
			Message:    fmt.Sprintf("content is %d words, under the %d minimum", words, cfg.Checks.MinWordCount),
			Suggestion: "thin content ranks poorly; expand the note or merge it into another",
		}}
	}
	return []domain.Finding{{
		Passed:   true,
		Severity: domain.SeverityInfo,
		Message:  fmt.Sprintf("content length %d words", words),
	}}
}
