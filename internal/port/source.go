package port

import "time"

// DocumentInfo describes one discoverable document in a vault.
type DocumentInfo struct {
	Path     string
	Basename string
	ModTime  time.Time
	Size     int64
}

// DocumentSource lists and reads the documents of a vault. Read may fail for
// an individual document; callers skip the document and keep scanning.
type DocumentSource interface {
	List() ([]DocumentInfo, error)

	Read(path string) (string, error)
}
