package cache

import (
	"sync"
	"time"
)

// Clock abstracts wall time so tests can simulate expiration.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// TTLCache is an in-memory key value store with a fixed expiration window.
// Expired entries are treated as absent and evicted lazily on read.
// A miss is an absence, never an error, callers fall back to the network.
type TTLCache struct {
	mu    sync.RWMutex
	items map[string]ttlItem
	ttl   time.Duration
	clock Clock
}

type ttlItem struct {
	value      any
	insertedAt time.Time
}

// NewTTLCache creates a cache with the given expiration window.
// A nil clock selects the wall clock.
func NewTTLCache(ttl time.Duration, clock Clock) *TTLCache {
	if clock == nil {
		clock = realClock{}
	}
	return &TTLCache{
		items: make(map[string]ttlItem),
		ttl:   ttl,
		clock: clock,
	}
}

// Get returns the stored value while it's inside the expiration window.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if c.clock.Now().Sub(entry.insertedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check under the write lock, another reader may have already
		// evicted and a writer may have re-inserted.
		if current, ok := c.items[key]; ok && current.insertedAt.Equal(entry.insertedAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.value, true
}

// Set unconditionally overwrites any prior entry.
func (c *TTLCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = ttlItem{
		value:      value,
		insertedAt: c.clock.Now(),
	}
}

// Len returns the number of stored entries, including not yet evicted
// expired ones.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
