package usecase

import (
	"fmt"
	"path"
	"time"

	"notelint/config"
	"notelint/internal/port"
)

// fakeSource is an in-memory document source for tests. Enumeration follows
// the order slice; paths in fail return a read error.
type fakeSource struct {
	order []string
	docs  map[string]string
	fail  map[string]bool
	reads int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		docs: make(map[string]string),
		fail: make(map[string]bool),
	}
}

func (f *fakeSource) add(p, content string) *fakeSource {
	f.order = append(f.order, p)
	f.docs[p] = content
	return f
}

func (f *fakeSource) List() ([]port.DocumentInfo, error) {
	infos := make([]port.DocumentInfo, 0, len(f.order))
	for _, p := range f.order {
		infos = append(infos, port.DocumentInfo{
			Path:     p,
			Basename: path.Base(p),
			ModTime:  time.Unix(1700000000, 0),
			Size:     int64(len(f.docs[p])),
		})
	}
	return infos, nil
}

func (f *fakeSource) Read(p string) (string, error) {
	f.reads++
	if f.fail[p] {
		return "", fmt.Errorf("boom: %s", p)
	}
	content, ok := f.docs[p]
	if !ok {
		return "", fmt.Errorf("not found: %s", p)
	}
	return content, nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Cache.Persist = false
	return cfg
}

// note builds a document with frontmatter title/description and a body.
func note(title, description, body string) string {
	fm := "---\n"
	if title != "" {
		fm += "title: " + title + "\n"
	}
	if description != "" {
		fm += "description: " + description + "\n"
	}
	fm += "---\n"
	return fm + body
}
