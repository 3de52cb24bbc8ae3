// Package checks holds the independent single-document lint checks. Each
// check is a stateless pure function of (document, config) that returns zero
// or more findings; none of them touch the corpus index.
package checks

import (
	"notelint/config"
	"notelint/internal/domain"
)

// Check names, used as keys in the per-document result bundle.
const (
	NameAltText           = "alt-text"
	NameNakedLinks        = "naked-links"
	NameHeadingOrder      = "heading-order"
	NameTitleLength       = "title-length"
	NameDescriptionLength = "description-length"
	NameContentLength     = "content-length"
	NameReadingLevel      = "reading-level"
	NameKeywordPlacement  = "keyword-placement"
	NameImageNaming       = "image-naming"

	// The corpus-wide duplicate findings are merged into the bundle under
	// these keys by the scan orchestrator.
	NameDuplicateTitle       = "duplicate-title"
	NameDuplicateDescription = "duplicate-description"
	NameDuplicateContent     = "duplicate-content"
)

// Func is the shape of every single-document check.
type Func func(doc domain.Document, cfg *config.Config) []domain.Finding

type registration struct {
	name    string
	enabled func(c *config.ChecksConfig) bool
	run     Func
}

var registry = []registration{
	{NameAltText, func(c *config.ChecksConfig) bool { return c.AltText }, CheckAltText},
	{NameNakedLinks, func(c *config.ChecksConfig) bool { return c.NakedLinks }, CheckNakedLinks},
	{NameHeadingOrder, func(c *config.ChecksConfig) bool { return c.HeadingOrder }, CheckHeadingOrder},
	{NameTitleLength, func(c *config.ChecksConfig) bool { return c.TitleLength }, CheckTitleLength},
	{NameDescriptionLength, func(c *config.ChecksConfig) bool { return c.DescriptionLength }, CheckDescriptionLength},
	{NameContentLength, func(c *config.ChecksConfig) bool { return c.ContentLength }, CheckContentLength},
	{NameReadingLevel, func(c *config.ChecksConfig) bool { return c.ReadingLevel }, CheckReadingLevel},
	{NameKeywordPlacement, func(c *config.ChecksConfig) bool { return c.KeywordPlacement }, CheckKeywordPlacement},
	{NameImageNaming, func(c *config.ChecksConfig) bool { return c.ImageNaming }, CheckImageNaming},
}

// Run executes every enabled check against one document. Checks that decline
// to apply (no images, no description) contribute no entry.
func Run(doc domain.Document, cfg *config.Config) map[string][]domain.Finding {
	out := make(map[string][]domain.Finding)
	for _, reg := range registry {
		if !reg.enabled(&cfg.Checks) {
			continue
		}
		if findings := reg.run(doc, cfg); len(findings) > 0 {
			out[reg.name] = findings
		}
	}
	return out
}
