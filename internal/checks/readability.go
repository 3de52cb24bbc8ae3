package checks

import (
	"fmt"
	"regexp"
	"strings"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// CheckReadingLevel estimates the Flesch-Kincaid grade of the note's prose
// and flags it when it exceeds the configured maximum. Skipped when the note
// has no measurable prose.
func CheckReadingLevel(doc domain.Document, cfg *config.Config) []domain.Finding {
	prose := strings.Join(extractor.ExtractParagraphs(doc.Content), " ")

	words := strings.Fields(prose)
	if len(words) == 0 {
		return nil
	}

	sentences := 0
	for _, s := range sentenceEnd.Split(prose, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return nil
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	grade := 0.39*(float64(len(words))/float64(sentences)) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59
	if grade < 0 {
		grade = 0
	}

	if grade > cfg.Checks.MaxGrade {
		return []domain.Finding{{
			Severity:   domain.SeverityNotice,
			Message:    fmt.Sprintf("reading level is grade %.1f, above the %.0f target", grade, cfg.Checks.MaxGrade),
			Suggestion: "shorten sentences and prefer simpler words",
		}}
	}
	return []domain.Finding{{
		Passed:   true,
		Severity: domain.SeverityInfo,
		Message:  fmt.Sprintf("reading level is grade %.1f", grade),
	}}
}

// countSyllables approximates syllables as vowel groups with a silent-e
// adjustment. Always at least 1 for a non-empty word.
func countSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, ".,;:!?()\"'"))
	if word == "" {
		return 0
	}

	isVowel := func(r byte) bool {
		return strings.IndexByte("aeiouy", r) >= 0
	}

	count := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		v := isVowel(word[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
