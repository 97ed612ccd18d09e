package models

import (
	"sync"
)

// Cache implements a simple in-process cache for move suggestions.
type Cache struct {
	// data stores the underlying map
	data map[string]MoveResponse

	// dataMutex protects data
	dataMutex sync.Mutex

	// maxSize is the number of entries after which an arbitrary entry is evicted.
	maxSize int
}

// NewCache creates a new cache.
func NewCache(maxSize int) *Cache {
	return &Cache{
		data:    make(map[string]MoveResponse),
		maxSize: maxSize,
	}
}

// Upsert adds or replaces an entry.
func (c *Cache) Upsert(key string, move MoveResponse) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	if _, ok := c.data[key]; !ok && len(c.data) >= c.maxSize {
		for evicted := range c.data {
			delete(c.data, evicted)
			break
		}
	}

	c.data[key] = move
}

// Lookup looks up a move by cache key.
func (c *Cache) Lookup(key string) (MoveResponse, bool) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	move, ok := c.data[key]
	return move, ok
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	return len(c.data)
}
