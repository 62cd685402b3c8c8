package collection

import (
	"sync"
	"time"
)

// CachedSource wraps a Source with a short TTL cache for Load. Save
// invalidates the cache so the next read is fresh.
//
// A single save usually produces several filesystem events; the watcher,
// the reload key and the save confirmation all ask for the document within
// the same burst. The TTL collapses those reads into one parse.
type CachedSource struct {
	inner Source
	ttl   time.Duration
	now   func() time.Time

	mu     sync.Mutex
	doc    *Document
	err    error
	expiry time.Time
	loaded bool
}

// Compile-time check.
var _ Source = (*CachedSource)(nil)

// NewCachedSource wraps inner with a TTL cache. A TTL of a few hundred
// milliseconds is enough to absorb one save burst.
func NewCachedSource(inner Source, ttl time.Duration) *CachedSource {
	return &CachedSource{inner: inner, ttl: ttl, now: time.Now}
}

// Invalidate drops the cached document.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.doc, c.err = nil, nil
	c.mu.Unlock()
}

// Path delegates to the inner source.
func (c *CachedSource) Path() string { return c.inner.Path() }

// Load returns the cached document while it is fresh, loading otherwise.
// Errors are cached too, so a broken file is not re-parsed on every event.
func (c *CachedSource) Load() (*Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded && c.now().Before(c.expiry) {
		return c.doc, c.err
	}
	c.doc, c.err = c.inner.Load()
	c.loaded = true
	c.expiry = c.now().Add(c.ttl)
	return c.doc, c.err
}

// Save writes through and invalidates the cache.
func (c *CachedSource) Save(doc *Document) error {
	err := c.inner.Save(doc)
	if err == nil {
		c.Invalidate()
	}
	return err
}
