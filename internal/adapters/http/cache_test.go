package http

import (
	"sync"
	"testing"
)

func (c *renderCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func TestRenderCache(t *testing.T) {
	c := newRenderCache()

	if _, ok := c.get("/"); ok {
		t.Fatal("Expected empty cache")
	}

	c.set("/", renderedPage{body: []byte("x"), etag: `"1"`})
	page, ok := c.get("/")
	if !ok || string(page.body) != "x" {
		t.Fatalf("Expected cached page, got %v %v", page, ok)
	}
	if c.len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.len())
	}
}

func TestRenderCacheConcurrent(t *testing.T) {
	c := newRenderCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.set("/", renderedPage{body: []byte("x")})
			c.get("/")
		}()
	}
	wg.Wait()

	if c.len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.len())
	}
}
