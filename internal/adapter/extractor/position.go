package extractor

import "strings"

// LocateParagraph recovers the 1-based line number of an extracted paragraph
// inside the original content by substring search. Extraction strips markup,
// so the search uses the paragraph's leading text as the needle. Used only
// for display navigation; returns 0, false when the needle cannot be found.
func LocateParagraph(content, paragraph string) (int, bool) {
	needle := paragraph
	if idx := strings.IndexByte(needle, '\n'); idx > 0 {
		needle = needle[:idx]
	}
	needle = strings.TrimSpace(needle)
	if len(needle) > 40 {
		needle = needle[:40]
	}
	if needle == "" {
		return 0, false
	}

	idx := strings.Index(content, needle)
	if idx < 0 {
		return 0, false
	}
	return 1 + strings.Count(content[:idx], "\n"), true
}

// LineOf returns the 1-based line number of the first occurrence of needle
// in content, or 0 when absent.
func LineOf(content, needle string) int {
	idx := strings.Index(content, needle)
	if idx < 0 {
		return 0
	}
	return 1 + strings.Count(content[:idx], "\n")
}
