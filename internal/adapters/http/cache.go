package http

import "sync"

type renderedPage struct {
	body []byte
	etag string
}

// renderCache holds rendered documents keyed by route path.
type renderCache struct {
	mu      sync.RWMutex
	entries map[string]renderedPage
}

func newRenderCache() *renderCache {
	return &renderCache{
		entries: make(map[string]renderedPage),
	}
}

func (c *renderCache) get(key string) (renderedPage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.entries[key]
	return page, ok
}

func (c *renderCache) set(key string, page renderedPage) {
	c.mu.Lock()
	c.entries[key] = page
	c.mu.Unlock()
}
