package usecase

import (
	"context"
	"fmt"

	"notelint/config"
	"notelint/internal/adapter/cache"
	"notelint/internal/checks"
	"notelint/internal/domain"
	"notelint/internal/port"
)

// ProgressFunc reports batch progress to the caller after each document.
type ProgressFunc func(done, total int, path string)

// ScanResult is the outcome of one batch scan.
type ScanResult struct {
	// Results holds one bundle per checked document, in enumeration order.
	Results []*domain.CheckResult

	// Skipped lists documents left out of the scan because they could not
	// be read. Their absence is not an error for the batch.
	Skipped []string

	CacheHits int
}

// Scanner orchestrates a batch scan: build the corpus index once, then check
// each document against it, consulting the result cache first. The cache is
// injected and owned by the caller; a Scanner holds no global state.
type Scanner struct {
	source    port.DocumentSource
	cache     *cache.ResultCache
	tokenizer port.Tokenizer
	cfg       *config.Config
}

func NewScanner(source port.DocumentSource, resultCache *cache.ResultCache, tokenizer port.Tokenizer, cfg *config.Config) *Scanner {
	return &Scanner{
		source:    source,
		cache:     resultCache,
		tokenizer: tokenizer,
		cfg:       cfg,
	}
}

// ScanAll checks every in-scope document in the vault. Cancellation is polled
// before each document: the in-flight document is abandoned without caching
// partial results and ctx.Err() propagates to the caller, distinct from the
// per-document read failures that are merely skipped. Results cached for
// documents finished before the cancellation stay valid.
func (s *Scanner) ScanAll(ctx context.Context, progress ProgressFunc) (*ScanResult, error) {
	index, skipped, err := NewIndexer(s.source, s.cfg).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus index: %w", err)
	}

	detector := NewDuplicateDetector(index, s.tokenizer, s.cfg)
	settingsFP := s.cfg.Fingerprint()

	result := &ScanResult{Skipped: skipped}
	total := len(index.Order)

	for i, path := range index.Order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bundle, hit := s.checkDocument(path, index, detector, settingsFP)
		if hit {
			result.CacheHits++
		}
		result.Results = append(result.Results, bundle)

		if progress != nil {
			progress(i+1, total, path)
		}
	}

	return result, nil
}

// ScanOne builds the index for the whole vault and checks a single document
// against it. Returns nil when the document is not part of the index (out of
// scope, ignored, or unreadable).
func (s *Scanner) ScanOne(ctx context.Context, path string) (*domain.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index, _, err := NewIndexer(s.source, s.cfg).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus index: %w", err)
	}
	if _, ok := index.Documents[path]; !ok {
		return nil, nil
	}

	detector := NewDuplicateDetector(index, s.tokenizer, s.cfg)
	bundle, _ := s.checkDocument(path, index, detector, s.cfg.Fingerprint())
	return bundle, nil
}

// checkDocument consults the cache, and on a miss runs the independent checks
// and the duplicate detector and caches the bundle. The second return value
// reports whether the result came from cache.
func (s *Scanner) checkDocument(path string, index *domain.CorpusIndex, detector *DuplicateDetector, settingsFP string) (*domain.CheckResult, bool) {
	doc := index.Documents[path]
	contentFP := contentFingerprint(doc)

	if cached, ok := s.cache.Get(path, contentFP, settingsFP); ok {
		return cached, true
	}

	bundle := &domain.CheckResult{
		Path:   path,
		Checks: checks.Run(doc, s.cfg),
	}

	if s.cfg.Checks.Duplicates {
		if fs := detector.CheckTitle(path); len(fs) > 0 {
			bundle.Checks[checks.NameDuplicateTitle] = fs
		}
		if fs := detector.CheckDescription(path); len(fs) > 0 {
			bundle.Checks[checks.NameDuplicateDescription] = fs
		}
		if fs := detector.CheckContent(path); len(fs) > 0 {
			bundle.Checks[checks.NameDuplicateContent] = fs
		}
	}

	checks.Tally(bundle)
	s.cache.Put(path, bundle, contentFP, settingsFP)
	return bundle, false
}

// contentFingerprint is a cheap change proxy: content size plus modification
// time. Not a hash of the content.
func contentFingerprint(doc domain.Document) string {
	return fmt.Sprintf("%d:%d", doc.Size, doc.ModTime.Unix())
}
