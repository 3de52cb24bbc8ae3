package checks

import (
	"strings"
	"testing"

	"notelint/config"
)

func TestCheckNakedLinks(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("naked url in prose", func(t *testing.T) {
		doc := mkdoc("Read this: https://example.com/docs for details.\n")
		got := CheckNakedLinks(doc, cfg)
		if len(got) != 1 {
			t.Fatalf("findings = %d, want 1", len(got))
		}
		if !strings.Contains(got[0].Message, "https://example.com/docs") {
			t.Errorf("message = %q", got[0].Message)
		}
		if got[0].Position == nil || got[0].Position.Line != 1 {
			t.Errorf("position = %+v", got[0].Position)
		}
	})

	t.Run("proper link is fine", func(t *testing.T) {
		doc := mkdoc("Read [the docs](https://example.com/docs) for details.\n")
		if got := CheckNakedLinks(doc, cfg); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("code spans excluded", func(t *testing.T) {
		doc := mkdoc("Fetch with `curl https://example.com` locally.\n")
		if got := CheckNakedLinks(doc, cfg); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("fenced code excluded", func(t *testing.T) {
		doc := mkdoc("```\ncurl https://example.com\n```\n")
		if got := CheckNakedLinks(doc, cfg); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("empty link text", func(t *testing.T) {
		doc := mkdoc("See [](https://example.com) here.\n")
		got := CheckNakedLinks(doc, cfg)
		if len(got) != 1 {
			t.Fatalf("findings = %d, want 1", len(got))
		}
		if !strings.Contains(got[0].Message, "no display text") {
			t.Errorf("message = %q", got[0].Message)
		}
	})

	t.Run("clean prose", func(t *testing.T) {
		if got := CheckNakedLinks(mkdoc("nothing to see here\n"), cfg); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
