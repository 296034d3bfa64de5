package api

import (
	"sync"
	"time"
)

const defaultCacheTTL = 30 * time.Second

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// Cache is a small TTL'd response cache for list queries, keyed by
// endpoint plus encoded query. It exists so repeated listings inside one
// dashboard session avoid refetching, and it is cleared wholesale on
// logout so no cached result outlives the session it was fetched under.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a response cache with the default TTL.
func NewCache() *Cache {
	return &Cache{
		ttl:     defaultCacheTTL,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached body for key, if present and fresh.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

// Set stores a response body under key.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{data: data, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops every entry whose key starts with prefix. Mutations use
// it so the next listing of the affected resource refetches.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
