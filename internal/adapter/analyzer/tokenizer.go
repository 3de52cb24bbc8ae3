package analyzer

import (
	"strings"
	"unicode"
)

// Tokenizer normalizes text into comparison tokens: casefold, stop-word
// removal, short-token and punctuation stripping.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		stopwords: defaultStopwords(),
	}
}

// Tokenize normalizes text into a token sequence. Identical input always
// yields the identical sequence; malformed or empty input yields an empty
// sequence.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))

	for _, word := range fields {
		if len(word) <= 2 {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		word = stripNonWord(word)
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// TokenSet normalizes text into a token set, collapsing duplicates.
func (t *Tokenizer) TokenSet(text string) map[string]struct{} {
	tokens := t.Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// stripNonWord removes any rune that is not a letter, digit, or underscore.
func stripNonWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// defaultStopwords returns a set of common English function words.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"the", "and", "for", "are", "but", "not", "you", "all",
		"can", "her", "was", "one", "our", "out", "day", "get",
		"has", "him", "his", "how", "its", "new", "now", "old",
		"see", "two", "way", "who", "did", "that", "this", "with",
		"have", "from", "they", "will", "been", "were", "would", "there",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
