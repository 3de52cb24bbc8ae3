package checks

import (
	"testing"

	"notelint/config"
)

func TestCheckReadingLevel(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("no prose", func(t *testing.T) {
		if got := CheckReadingLevel(mkdoc(""), cfg); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
		if got := CheckReadingLevel(mkdoc("```\ncode only here\n```\n"), cfg); got != nil {
			t.Errorf("expected nil for code-only document, got %v", got)
		}
	})

	t.Run("simple prose passes", func(t *testing.T) {
		doc := mkdoc("The cat sat on the mat. The dog ran to the park and we had fun.\n")
		got := CheckReadingLevel(doc, cfg)
		if len(got) != 1 || !got[0].Passed {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("dense prose flagged", func(t *testing.T) {
		strict := config.DefaultConfig()
		strict.Checks.MaxGrade = 5
		doc := mkdoc("Extraordinary organizational methodologies necessitate considerable " +
			"institutional coordination facilitating comprehensive administrative " +
			"optimization throughout sprawling multinational corporations everywhere.\n")
		got := CheckReadingLevel(doc, strict)
		if len(got) != 1 || got[0].Passed {
			t.Fatalf("got %v", got)
		}
	})
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"be", 1},
		{"code", 1},
		{"beautiful", 3},
		{"rhythm", 1},
		{"organization,", 5},
		{"", 0},
	}
	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
