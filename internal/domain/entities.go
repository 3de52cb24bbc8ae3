package domain

import "time"

// Severity classifies a finding. Info and notice findings are advisory;
// warnings and errors are penalizing.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityNotice  Severity = "notice"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Penalizing reports whether findings of this severity count against the score.
func (s Severity) Penalizing() bool {
	return s == SeverityWarning || s == SeverityError
}

// Document holds the per-document metadata captured during an indexing pass.
type Document struct {
	Path        string
	Basename    string
	Title       string
	Description string
	Content     string
	ModTime     time.Time
	Size        int64
}

// CorpusIndex is the in-memory index built once per scan. It is read-only
// after the indexer returns and may be shared by every per-document check in
// the same batch.
type CorpusIndex struct {
	// Documents maps path to its metadata.
	Documents map[string]Document

	// Order lists the indexed paths in enumeration order. Duplicate evidence
	// lists and pairwise scans follow this order, not map order.
	Order []string

	// TitleIndex maps a normalized (lowercased, trimmed) title to the paths
	// that carry it, in enumeration order. A single-element list means the
	// title is unique in the corpus.
	TitleIndex map[string][]string

	// DescriptionIndex has the same semantics for descriptions.
	DescriptionIndex map[string][]string

	// Paragraphs holds each document's extracted prose paragraphs, keyed by
	// path. Extracted once during indexing and reused by every pairwise
	// comparison in the batch.
	Paragraphs map[string][]string

	BuiltAt time.Time
}

// Position points a finding back at its place in the source for editor
// navigation. Informational only.
type Position struct {
	Line       int    `json:"line"`
	SearchText string `json:"search_text,omitempty"`
	Context    string `json:"context,omitempty"`
}

// Finding is one detected issue or one passing check instance.
type Finding struct {
	Passed     bool      `json:"passed"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
	Position   *Position `json:"position,omitempty"`
}

// CheckResult is the full per-document result bundle.
type CheckResult struct {
	Path          string               `json:"path"`
	Checks        map[string][]Finding `json:"checks"`
	IssuesCount   int                  `json:"issues_count"`
	WarningsCount int                  `json:"warnings_count"`
	NoticesCount  int                  `json:"notices_count"`
	Score         int                  `json:"score"`
}
