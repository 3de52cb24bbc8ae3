package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"notelint/internal/adapter/analyzer"
	"notelint/internal/adapter/cache"
)

func newScanner(src *fakeSource) (*Scanner, *cache.ResultCache) {
	cfg := testConfig()
	c := cache.NewResultCache(100, time.Hour)
	return NewScanner(src, c, analyzer.NewTokenizer(), cfg), c
}

func TestScanAllProducesResults(t *testing.T) {
	src := newFakeSource().
		add("a.md", note("Alpha", "first description", "prose paragraph with plenty of characters to analyze.")).
		add("b.md", note("Beta", "second description", "another prose paragraph with plenty of characters."))

	s, _ := newScanner(src)

	var progressCalls int
	result, err := s.ScanAll(context.Background(), func(done, total int, path string) {
		progressCalls++
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(result.Results))
	}
	if progressCalls != 2 {
		t.Errorf("progress calls = %d, want 2", progressCalls)
	}
	if result.Results[0].Path != "a.md" || result.Results[1].Path != "b.md" {
		t.Errorf("result order: %s, %s", result.Results[0].Path, result.Results[1].Path)
	}
	for _, r := range result.Results {
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("%s score %d out of range", r.Path, r.Score)
		}
		if len(r.Checks) == 0 {
			t.Errorf("%s has no check results", r.Path)
		}
	}
}

func TestScanCacheIdempotence(t *testing.T) {
	src := newFakeSource().
		add("a.md", note("Alpha", "first description", "prose paragraph with plenty of characters to analyze.")).
		add("b.md", note("Beta", "second description", "another prose paragraph with plenty of characters."))

	s, _ := newScanner(src)

	first, err := s.ScanAll(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHits != 0 {
		t.Errorf("first scan cache hits = %d, want 0", first.CacheHits)
	}

	second, err := s.ScanAll(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheHits != 2 {
		t.Errorf("second scan cache hits = %d, want 2", second.CacheHits)
	}
	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Error("cached results differ from computed results")
	}
}

func TestScanSettingsChangeForcesRecompute(t *testing.T) {
	src := newFakeSource().
		add("a.md", note("Alpha", "first description", "prose paragraph with plenty of characters to analyze."))

	cfg := testConfig()
	c := cache.NewResultCache(100, time.Hour)
	s := NewScanner(src, c, analyzer.NewTokenizer(), cfg)

	if _, err := s.ScanAll(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	// A fingerprinted setting changes: the same cache must miss.
	cfg.Duplicates.Threshold = 50
	second, err := s.ScanAll(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheHits != 0 {
		t.Errorf("cache hits after settings change = %d, want 0", second.CacheHits)
	}
}

func TestScanUnrelatedSettingsKeepCache(t *testing.T) {
	src := newFakeSource().
		add("a.md", note("Alpha", "first description", "prose paragraph with plenty of characters to analyze."))

	cfg := testConfig()
	c := cache.NewResultCache(100, time.Hour)
	s := NewScanner(src, c, analyzer.NewTokenizer(), cfg)

	if _, err := s.ScanAll(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	// Logging and cache sizing are outside the fingerprint.
	cfg.Logging.Verbose = true
	cfg.Cache.MaxEntries = 9999
	second, err := s.ScanAll(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheHits != 1 {
		t.Errorf("cache hits after unrelated settings change = %d, want 1", second.CacheHits)
	}
}

func TestScanCancellation(t *testing.T) {
	src := newFakeSource().
		add("a.md", note("Alpha", "", "prose paragraph with plenty of characters to analyze."))

	s, c := newScanner(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.ScanAll(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result != nil {
		t.Error("cancelled scan must not return partial results as success")
	}
	if c.Size() != 0 {
		t.Errorf("cancelled scan cached %d results, want 0", c.Size())
	}
}

func TestScanSkipsUnreadable(t *testing.T) {
	src := newFakeSource().
		add("good.md", note("Good", "", "healthy prose paragraph, long enough for the extractor.")).
		add("bad.md", note("Bad", "", "unused"))
	src.fail["bad.md"] = true

	s, _ := newScanner(src)

	result, err := s.ScanAll(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(result.Results))
	}
	if !reflect.DeepEqual(result.Skipped, []string{"bad.md"}) {
		t.Errorf("skipped = %v", result.Skipped)
	}
}

func TestScanOne(t *testing.T) {
	src := newFakeSource().
		add("a.md", note("Alpha", "", "prose paragraph with plenty of characters to analyze.")).
		add("b.md", note("Beta", "", "another prose paragraph with plenty of characters here."))

	s, _ := newScanner(src)

	result, err := s.ScanOne(context.Background(), "b.md")
	if err != nil {
		t.Fatal(err)
	}
	if result == nil || result.Path != "b.md" {
		t.Fatalf("result = %+v", result)
	}

	missing, err := s.ScanOne(context.Background(), "ghost.md")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("expected nil result for out-of-scope path, got %+v", missing)
	}
}
