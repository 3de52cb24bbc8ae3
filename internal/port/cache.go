package port

import (
	"time"

	"notelint/internal/domain"
)

// CachedEntry is a result-cache entry in transportable form, used to move
// entries between the in-memory cache and a persistent store.
type CachedEntry struct {
	Path                string              `json:"path"`
	Result              *domain.CheckResult `json:"result"`
	ContentFingerprint  string              `json:"content_fingerprint"`
	SettingsFingerprint string              `json:"settings_fingerprint"`
	Timestamp           time.Time           `json:"timestamp"`
}

// ResultStore persists cache entries between runs. The in-memory cache stays
// authoritative during a scan; the store is seeded from and flushed to.
type ResultStore interface {
	PutEntry(e CachedEntry) error

	ListEntries() ([]CachedEntry, error)

	DeleteEntry(path string) error

	Clear() error

	Count() (int, error)

	Close() error
}
