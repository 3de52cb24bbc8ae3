package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

const minParagraphLen = 30

var (
	backtickFence = regexp.MustCompile("(?ms)^```.*?^```[ \t]*$")
	tildeFence    = regexp.MustCompile("(?ms)^~~~.*?^~~~[ \t]*$")
	openFence     = regexp.MustCompile("(?m)^(```|~~~)")

	headingMarker  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	listMarker     = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	orderedMarker  = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	quoteMarker    = regexp.MustCompile(`(?m)^(>\s*)+`)
	horizontalRule = regexp.MustCompile(`(?m)^[ \t]*[-*_]{3,}[ \t]*$`)
	tableRow       = regexp.MustCompile(`(?m)^\s*\|.*$`)

	embedSyntax    = regexp.MustCompile(`!\[\[[^\]]*\]\]`)
	wikilinkSyntax = regexp.MustCompile(`\[\[[^\]]*\]\]`)
	imageSyntax    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkSyntax     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

	htmlTag   = regexp.MustCompile(`<[^>]+>`)
	blankLine = regexp.MustCompile(`\n\s*\n`)
	wordLike  = regexp.MustCompile(`^[A-Za-z][A-Za-z'-]*$`)
)

// ExtractParagraphs strips non-prose markdown structure from raw content and
// splits the remainder into prose paragraphs, in source order. Stateless:
// recomputed on every call.
func ExtractParagraphs(rawContent string) []string {
	_, body := SplitFrontmatter(rawContent)

	// Fenced code, greedily to the next matching fence. An unclosed fence
	// swallows the rest of the document.
	body = backtickFence.ReplaceAllString(body, "")
	body = tildeFence.ReplaceAllString(body, "")
	if loc := openFence.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}

	// Structural line markers.
	body = headingMarker.ReplaceAllString(body, "")
	body = horizontalRule.ReplaceAllString(body, "")
	body = tableRow.ReplaceAllString(body, "")
	body = listMarker.ReplaceAllString(body, "")
	body = orderedMarker.ReplaceAllString(body, "")
	body = quoteMarker.ReplaceAllString(body, "")

	// Link and embed syntax. Targets are discarded, not unwrapped: only the
	// display text of standard links survives.
	body = embedSyntax.ReplaceAllString(body, "")
	body = wikilinkSyntax.ReplaceAllString(body, "")
	body = imageSyntax.ReplaceAllString(body, "")
	body = linkSyntax.ReplaceAllString(body, "$1")

	var paragraphs []string
	for _, candidate := range blankLine.Split(body, -1) {
		candidate = strings.TrimSpace(candidate)
		if keepParagraph(candidate) {
			paragraphs = append(paragraphs, candidate)
		}
	}
	return paragraphs
}

// keepParagraph applies the prose filters: minimum length, HTML-tag density,
// symbol density, and word-like token ratio.
func keepParagraph(p string) bool {
	if len(p) < minParagraphLen {
		return false
	}

	total := len(p)

	tagChars := 0
	for _, m := range htmlTag.FindAllString(p, -1) {
		tagChars += len(m)
	}
	if float64(tagChars)/float64(total) > 0.3 {
		return false
	}

	symbolChars := 0
	for _, r := range p {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		symbolChars++
	}
	if float64(symbolChars)/float64(total) > 0.5 {
		return false
	}

	fields := strings.Fields(p)
	if len(fields) == 0 {
		return false
	}
	wordish := 0
	for _, f := range fields {
		if wordLike.MatchString(strings.Trim(f, ".,;:!?()\"'")) {
			wordish++
		}
	}
	if float64(wordish)/float64(len(fields)) < 0.3 {
		return false
	}

	return true
}
