package checks

import (
	"fmt"
	"regexp"
	"strings"

	"notelint/config"
	"notelint/internal/domain"
)

var headingLine = regexp.MustCompile(`^(#{1,6})\s+(.*)`)

type heading struct {
	level int
	text  string
	line  int
}

// CheckHeadingOrder verifies the heading hierarchy: the first heading should
// be an H1, there should be only one H1, and levels must not skip downward by
// more than one step. Documents without headings produce no finding.
func CheckHeadingOrder(doc domain.Document, _ *config.Config) []domain.Finding {
	headings := collectHeadings(doc.Content)
	if len(headings) == 0 {
		return nil
	}

	var findings []domain.Finding

	if headings[0].level != 1 {
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("first heading %q is an H%d, expected an H1", headings[0].text, headings[0].level),
			Position:   &domain.Position{Line: headings[0].line},
			Suggestion: "start the note with a single top-level heading",
		})
	}

	h1Count := 0
	for _, h := range headings {
		if h.level == 1 {
			h1Count++
		}
	}
	if h1Count > 1 {
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("document has %d H1 headings", h1Count),
			Suggestion: "demote the extra H1s so the note has one top-level heading",
		})
	}

	for i := 1; i < len(headings); i++ {
		prev, cur := headings[i-1], headings[i]
		if cur.level > prev.level+1 {
			findings = append(findings, domain.Finding{
				Severity:   domain.SeverityWarning,
				Message:    fmt.Sprintf("heading %q jumps from H%d to H%d", cur.text, prev.level, cur.level),
				Position:   &domain.Position{Line: cur.line},
				Suggestion: "do not skip heading levels",
			})
		}
	}

	if len(findings) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "heading hierarchy is well ordered",
		}}
	}
	return findings
}

// collectHeadings scans line by line, skipping fenced code blocks.
func collectHeadings(content string) []heading {
	var headings []heading
	inFence := false

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := headingLine.FindStringSubmatch(line); m != nil {
			headings = append(headings, heading{
				level: len(m[1]),
				text:  strings.TrimSpace(m[2]),
				line:  i + 1,
			})
		}
	}
	return headings
}
