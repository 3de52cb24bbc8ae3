package usecase

import (
	"path/filepath"
	"strings"
	"time"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
	"notelint/internal/logger"
	"notelint/internal/port"
)

// Indexer builds the in-memory corpus index for one scan. Every call is a
// full rebuild; callers decide when to rebuild versus reuse an index across
// several single-document checks.
type Indexer struct {
	source port.DocumentSource
	cfg    *config.Config
}

func NewIndexer(source port.DocumentSource, cfg *config.Config) *Indexer {
	return &Indexer{source: source, cfg: cfg}
}

// Build enumerates the vault, applies the scope and ignore filters, reads
// each surviving document, and populates the document map, the title and
// description reverse indexes, and the paragraph side-table. A document that
// cannot be read is logged and left out entirely: it contributes to no index
// structure and is invisible to duplicate lookups. The returned skip list
// names those documents.
func (ix *Indexer) Build() (*domain.CorpusIndex, []string, error) {
	infos, err := ix.source.List()
	if err != nil {
		return nil, nil, err
	}

	index := &domain.CorpusIndex{
		Documents:        make(map[string]domain.Document),
		TitleIndex:       make(map[string][]string),
		DescriptionIndex: make(map[string][]string),
		Paragraphs:       make(map[string][]string),
		BuiltAt:          time.Now(),
	}

	var skipped []string

	for _, info := range infos {
		if !ix.inScope(info.Path) {
			continue
		}
		if ix.cfg.Scan.IgnoreUnderscore && strings.HasPrefix(info.Basename, "_") {
			continue
		}

		content, err := ix.source.Read(info.Path)
		if err != nil {
			logger.Warn("skipping unreadable document %s: %v", info.Path, err)
			skipped = append(skipped, info.Path)
			continue
		}

		doc := ix.buildDocument(info, content)
		index.Documents[doc.Path] = doc
		index.Order = append(index.Order, doc.Path)
		index.Paragraphs[doc.Path] = extractor.ExtractParagraphs(content)

		if key := normalizeKey(doc.Title); key != "" {
			index.TitleIndex[key] = append(index.TitleIndex[key], doc.Path)
		}
		if key := normalizeKey(doc.Description); key != "" {
			index.DescriptionIndex[key] = append(index.DescriptionIndex[key], doc.Path)
		}
	}

	return index, skipped, nil
}

// buildDocument extracts title and description from frontmatter, falling back
// to the basename for the title. Missing or malformed frontmatter is not an
// error; the fields degrade to their fallbacks.
func (ix *Indexer) buildDocument(info port.DocumentInfo, content string) domain.Document {
	fm, _ := extractor.SplitFrontmatter(content)

	title := fm.Get(ix.cfg.Properties.Title)
	if title == "" {
		title = strings.TrimSuffix(info.Basename, filepath.Ext(info.Basename))
	}

	return domain.Document{
		Path:        info.Path,
		Basename:    info.Basename,
		Title:       title,
		Description: fm.Get(ix.cfg.Properties.Description),
		Content:     content,
		ModTime:     info.ModTime,
		Size:        info.Size,
	}
}

func (ix *Indexer) inScope(path string) bool {
	if len(ix.cfg.Scan.Directories) == 0 {
		return true
	}
	for _, dir := range ix.cfg.Scan.Directories {
		dir = strings.TrimSuffix(strings.TrimSpace(dir), "/")
		if dir == "" {
			continue
		}
		if path == dir || strings.HasPrefix(path, dir+"/") {
			return true
		}
	}
	return false
}

// normalizeKey lowercases and trims a title or description for the exact-match
// reverse indexes. Full tokenization would over-match on these short fields.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
