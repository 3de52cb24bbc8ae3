package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"notelint/internal/domain"
	"notelint/internal/port"
)

// ResultCache memoizes per-document check results keyed by path. A lookup
// hits only when the stored settings fingerprint matches the caller's, the
// stored content fingerprint matches the caller's, and the entry is younger
// than the TTL; any mismatch evicts the entry and reports a miss. Entries
// are never partially valid.
//
// The cache is an explicitly constructed object: callers own its lifecycle
// and may run several independent instances side by side.
type ResultCache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, *entry]
	ttl     time.Duration

	// now is swappable for TTL tests.
	now func() time.Time
}

type entry struct {
	result     *domain.CheckResult
	contentFP  string
	settingsFP string
	timestamp  time.Time
}

func NewResultCache(maxEntries int, ttl time.Duration) *ResultCache {
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	entries, _ := lru.New[string, *entry](maxEntries)
	return &ResultCache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached result for path, or nil and false on a miss.
// Expired or mismatched entries are deleted on the way out.
func (c *ResultCache) Get(path, contentFP, settingsFP string) (*domain.CheckResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Get(path)
	if !ok {
		return nil, false
	}

	expired := c.now().Sub(e.timestamp) > c.ttl
	if expired || e.settingsFP != settingsFP || e.contentFP != contentFP {
		c.entries.Remove(path)
		return nil, false
	}

	return e.result, true
}

// Put stores a result, unconditionally overwriting any existing entry.
func (c *ResultCache) Put(path string, result *domain.CheckResult, contentFP, settingsFP string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(path, &entry{
		result:     result,
		contentFP:  contentFP,
		settingsFP: settingsFP,
		timestamp:  c.now(),
	})
}

// Invalidate removes the entry for a single path.
func (c *ResultCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(path)
}

// InvalidateAll empties the cache.
func (c *ResultCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}

// Size returns the number of live entries.
func (c *ResultCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Export snapshots every entry for persistence.
func (c *ResultCache) Export() []port.CachedEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]port.CachedEntry, 0, c.entries.Len())
	for _, path := range c.entries.Keys() {
		e, ok := c.entries.Peek(path)
		if !ok {
			continue
		}
		out = append(out, port.CachedEntry{
			Path:                path,
			Result:              e.result,
			ContentFingerprint:  e.contentFP,
			SettingsFingerprint: e.settingsFP,
			Timestamp:           e.timestamp,
		})
	}
	return out
}

// Seed loads previously persisted entries, keeping their original timestamps
// so the TTL still counts from first computation. Entries already past the
// TTL are dropped rather than loaded.
func (c *ResultCache) Seed(entries []port.CachedEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, pe := range entries {
		if pe.Result == nil || pe.Path == "" {
			continue
		}
		if c.now().Sub(pe.Timestamp) > c.ttl {
			continue
		}
		c.entries.Add(pe.Path, &entry{
			result:     pe.Result,
			contentFP:  pe.ContentFingerprint,
			settingsFP: pe.SettingsFingerprint,
			timestamp:  pe.Timestamp,
		})
	}
}
