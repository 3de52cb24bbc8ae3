package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"notelint/internal/port"
)

// VaultSource discovers and reads markdown documents under a root directory.
// Document paths are slash-separated and relative to the root, so they stay
// stable across machines and can serve as index keys.
type VaultSource struct {
	root     string
	includes []string
	excludes []string
}

func NewVaultSource(root string, includes, excludes []string) *VaultSource {
	if len(includes) == 0 {
		includes = []string{"**/*.md"}
	}
	return &VaultSource{
		root:     root,
		includes: includes,
		excludes: excludes,
	}
}

// List enumerates every document matching the include patterns and not
// matching the exclude patterns, in filesystem walk order.
func (v *VaultSource) List() ([]port.DocumentInfo, error) {
	root, err := filepath.Abs(v.root)
	if err != nil {
		return nil, err
	}

	var docs []port.DocumentInfo

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if v.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if v.shouldInclude(relPath) && !v.shouldExclude(relPath) {
			docs = append(docs, port.DocumentInfo{
				Path:     relPath,
				Basename: filepath.Base(path),
				ModTime:  info.ModTime(),
				Size:     info.Size(),
			})
		}

		return nil
	})

	return docs, err
}

// Read returns the content of a previously listed document.
func (v *VaultSource) Read(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(v.root, filepath.FromSlash(path)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v *VaultSource) shouldInclude(path string) bool {
	for _, pattern := range v.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (v *VaultSource) shouldExclude(path string) bool {
	for _, pattern := range v.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
