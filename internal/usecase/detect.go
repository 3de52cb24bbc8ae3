package usecase

import (
	"fmt"
	"sort"
	"strings"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
	"notelint/internal/port"
)

// Paragraphs shorter than this are not worth a pairwise scan. Intentionally
// higher than the extractor's own minimum so only substantial prose is
// compared.
const minSubstantialLen = 50

const topMatches = 3

// genericTitles downgrades duplicate findings for titles that are duplicated
// everywhere by convention rather than by accident.
var genericTitles = map[string]struct{}{
	"untitled": {},
	"new note": {},
	"note":     {},
	"document": {},
	"index":    {},
	"home":     {},
}

// DuplicateDetector runs the three duplicate sub-checks for one target
// document against a previously built corpus index. The index is read-only;
// one detector may serve every document of a batch.
type DuplicateDetector struct {
	index     *domain.CorpusIndex
	tokenizer port.Tokenizer
	cfg       *config.Config
}

func NewDuplicateDetector(index *domain.CorpusIndex, tokenizer port.Tokenizer, cfg *config.Config) *DuplicateDetector {
	return &DuplicateDetector{
		index:     index,
		tokenizer: tokenizer,
		cfg:       cfg,
	}
}

// CheckTitle reports whether other documents share the target's normalized
// title. Exact-match semantics: case and surrounding whitespace are folded,
// nothing else. A target absent from the index yields no findings.
func (d *DuplicateDetector) CheckTitle(path string) []domain.Finding {
	doc, ok := d.index.Documents[path]
	if !ok {
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(doc.Title))
	if key == "" {
		return nil
	}

	others := d.othersWithKey(d.index.TitleIndex[key], path)
	if len(others) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("title %q is unique in the vault", doc.Title),
		}}
	}

	severity := domain.SeverityError
	suggestion := "retitle one of the notes so each title is unique"
	if _, generic := genericTitles[key]; generic {
		severity = domain.SeverityWarning
		suggestion = "replace the generic title with something descriptive"
	}

	return []domain.Finding{{
		Severity:   severity,
		Message:    fmt.Sprintf("title %q is shared with %s", doc.Title, strings.Join(others, ", ")),
		Suggestion: suggestion,
	}}
}

// CheckDescription is symmetric to CheckTitle over the description index. It
// is skipped entirely when no description property is configured or the
// target has none.
func (d *DuplicateDetector) CheckDescription(path string) []domain.Finding {
	if d.cfg.Properties.Description == "" {
		return nil
	}
	doc, ok := d.index.Documents[path]
	if !ok {
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(doc.Description))
	if key == "" {
		return nil
	}

	others := d.othersWithKey(d.index.DescriptionIndex[key], path)
	if len(others) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "description is unique in the vault",
		}}
	}

	return []domain.Finding{{
		Severity:   domain.SeverityError,
		Message:    fmt.Sprintf("description is shared with %s", strings.Join(others, ", ")),
		Suggestion: "write a distinct description for each note",
	}}
}

type paragraphMatch struct {
	path       string
	similarity float64
}

// CheckContent scans every other indexed document for paragraphs whose
// Jaccard similarity to one of the target's paragraphs meets the configured
// threshold. One finding per matched target paragraph, listing the strongest
// matches; a single passing finding when the corpus yields none.
func (d *DuplicateDetector) CheckContent(path string) []domain.Finding {
	doc, ok := d.index.Documents[path]
	if !ok {
		return nil
	}

	threshold := float64(d.cfg.Duplicates.Threshold)

	var targets []string
	for _, p := range d.index.Paragraphs[path] {
		if len(p) >= minSubstantialLen {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "no substantial content to compare",
		}}
	}

	matches := make([][]paragraphMatch, len(targets))
	for _, otherPath := range d.index.Order {
		if otherPath == path {
			continue
		}
		for _, otherPara := range d.index.Paragraphs[otherPath] {
			if len(otherPara) < minSubstantialLen {
				continue
			}
			for i, target := range targets {
				sim := d.tokenizer.Similarity(target, otherPara)
				if sim >= threshold {
					matches[i] = append(matches[i], paragraphMatch{path: otherPath, similarity: sim})
				}
			}
		}
	}

	var findings []domain.Finding
	for i, paraMatches := range matches {
		if len(paraMatches) == 0 {
			continue
		}

		// Descending similarity; ties keep scan-discovery order.
		sort.SliceStable(paraMatches, func(a, b int) bool {
			return paraMatches[a].similarity > paraMatches[b].similarity
		})
		if len(paraMatches) > topMatches {
			paraMatches = paraMatches[:topMatches]
		}

		parts := make([]string, len(paraMatches))
		for j, m := range paraMatches {
			parts[j] = fmt.Sprintf("%s (%.0f%%)", m.path, m.similarity)
		}

		finding := domain.Finding{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("paragraph %d is a near-duplicate of %s", i+1, strings.Join(parts, ", ")),
			Suggestion: "rewrite the paragraph or consolidate the notes",
		}
		if line, ok := extractor.LocateParagraph(doc.Content, targets[i]); ok {
			finding.Position = &domain.Position{
				Line:       line,
				SearchText: firstChars(targets[i], 40),
			}
		}
		findings = append(findings, finding)
	}

	if len(findings) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "no near-duplicate paragraphs found",
		}}
	}
	return findings
}

// othersWithKey returns every path on the reverse-index list except the
// target, preserving enumeration order.
func (d *DuplicateDetector) othersWithKey(paths []string, target string) []string {
	var others []string
	for _, p := range paths {
		if p != target {
			others = append(others, p)
		}
	}
	return others
}

func firstChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
