package checks

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"notelint/config"
	"notelint/internal/adapter/extractor"
	"notelint/internal/domain"
)

var (
	markdownImage = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	embedImage    = regexp.MustCompile(`!\[\[([^\]|]+)(\|[^\]]*)?\]\]`)

	genericImageName = regexp.MustCompile(`(?i)^(img|dsc|dscn|dcim)[-_]?\d+|^screen ?shot|^pasted image`)
)

// CheckAltText flags standard markdown images with empty alt text. Emits a
// passing finding when every image carries alt text and nothing when the
// document has no images.
func CheckAltText(doc domain.Document, _ *config.Config) []domain.Finding {
	images := markdownImage.FindAllStringSubmatch(doc.Content, -1)
	if len(images) == 0 {
		return nil
	}

	var findings []domain.Finding
	for _, m := range images {
		alt, target := strings.TrimSpace(m[1]), m[2]
		if alt != "" {
			continue
		}
		f := domain.Finding{
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("image %s has no alt text", target),
			Suggestion: "describe the image so screen readers and crawlers can understand it",
		}
		if line := extractor.LineOf(doc.Content, m[0]); line > 0 {
			f.Position = &domain.Position{Line: line, SearchText: m[0]}
		}
		findings = append(findings, f)
	}

	if len(findings) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("all %d images have alt text", len(images)),
		}}
	}
	return findings
}

// CheckImageNaming flags image targets whose filename looks like a raw camera
// or screenshot export, or contains spaces.
func CheckImageNaming(doc domain.Document, _ *config.Config) []domain.Finding {
	var targets []string
	for _, m := range markdownImage.FindAllStringSubmatch(doc.Content, -1) {
		targets = append(targets, m[2])
	}
	for _, m := range embedImage.FindAllStringSubmatch(doc.Content, -1) {
		targets = append(targets, m[1])
	}
	if len(targets) == 0 {
		return nil
	}

	var findings []domain.Finding
	for _, target := range targets {
		base := path.Base(strings.TrimSpace(target))
		name := strings.TrimSuffix(base, path.Ext(base))

		var reason string
		switch {
		case genericImageName.MatchString(name):
			reason = "has an auto-generated name"
		case strings.Contains(base, " "):
			reason = "contains spaces"
		default:
			continue
		}

		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityNotice,
			Message:    fmt.Sprintf("image filename %q %s", base, reason),
			Suggestion: "rename the file with descriptive hyphenated words",
		})
	}

	if len(findings) == 0 {
		return []domain.Finding{{
			Passed:   true,
			Severity: domain.SeverityInfo,
			Message:  "image filenames look descriptive",
		}}
	}
	return findings
}
