package server

import (
	"sync"
	"time"
)

// cacheKey identifies one rendering of the workspace.
type cacheKey struct {
	Sidebar bool
}

// cacheEntry holds an encoded frame with its timestamp.
type cacheEntry struct {
	png       []byte
	timestamp time.Time
}

// RenderCache provides a TTL-based cache for rendered PNG frames.
type RenderCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

// NewRenderCache creates a new cache. A ttl of 0 disables caching.
func NewRenderCache(ttl time.Duration) *RenderCache {
	return &RenderCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
	}
}

// Render returns the cached frame if within TTL, otherwise calls render.
// The caller must hold the workspace mutex.
func (c *RenderCache) Render(sidebar bool, render func() ([]byte, error)) ([]byte, error) {
	if c.ttl == 0 {
		return render()
	}

	key := cacheKey{Sidebar: sidebar}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		png := entry.png
		c.mu.Unlock()
		return png, nil
	}
	c.mu.Unlock()

	png, err := render()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{png: png, timestamp: time.Now()}
	c.mu.Unlock()

	return png, nil
}

// InvalidateAll clears the entire cache.
func (c *RenderCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
