package extractor

import "strings"

// Frontmatter is the flat key-value block parsed from the head of a document.
type Frontmatter map[string]string

// SplitFrontmatter separates a leading frontmatter block (delimited by ---
// lines) from the document body. Malformed or absent frontmatter is not an
// error: the fields come back empty and the whole content is the body.
func SplitFrontmatter(content string) (Frontmatter, string) {
	fields := Frontmatter{}

	if !strings.HasPrefix(content, "---") {
		return fields, content
	}

	lines := strings.Split(content, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "---" {
		return fields, content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		// Unterminated block: treat everything as body.
		return fields, content
	}

	for _, line := range lines[1:end] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = stripQuotes(strings.TrimSpace(value))
	}

	body := strings.Join(lines[end+1:], "\n")
	return fields, body
}

// Get returns the value for a property name, or "" when the name is empty or
// the property is absent.
func (f Frontmatter) Get(name string) string {
	if name == "" {
		return ""
	}
	return f[name]
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
