package checks

import (
	"fmt"
	"regexp"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
)

var (
	fencedCode    = regexp.MustCompile("(?ms)^(```|~~~).*?^(```|~~~)[ \t]*$")
	inlineCode    = regexp.MustCompile("`[^`\n]*`")
	markdownLink  = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	bareURL       = regexp.MustCompile(`https?://[^\s)>\]]+`)
	emptyTextLink = regexp.MustCompile(`\[\s*\]\(([^)]*)\)`)
)

// CheckNakedLinks flags URLs pasted into prose without markdown link syntax,
// and links whose display text is empty. Code spans and fences are excluded.
func CheckNakedLinks(doc domain.Document, _ *config.Config) []domain.Finding {
	var findings []domain.Finding

	for _, m := range emptyTextLink.FindAllStringSubmatch(doc.Content, -1) {
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityNotice,
			Message:    fmt.Sprintf("link to %s has no display text", m[1]),
			Suggestion: "give the link descriptive anchor text",
		})
	}

	// Remove code and proper link syntax; whatever URL remains is naked.
	prose := fencedCode.ReplaceAllString(doc.Content, "")
	prose = inlineCode.ReplaceAllString(prose, "")
	prose = markdownLink.ReplaceAllString(prose, "")

	for _, url := range bareURL.FindAllString(prose, -1) {
		f := domain.Finding{
			Severity:   domain.SeverityNotice,
			Message:    fmt.Sprintf("naked URL %s in prose", url),
			Suggestion: "wrap the URL in a markdown link with anchor text",
		}
		if line := extractor.LineOf(doc.Content, url); line > 0 {
			f.Position = &domain.Position{Line: line, SearchText: url}
		}
		findings = append(findings, f)
	}

	if len(findings) == 0 {
		return nil
	}
	return findings
}
