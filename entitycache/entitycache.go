// Package entitycache keeps normalized in-memory mirrors of server
// collections, keyed by id. Pages use it to serve already-seen records
// (e.g. the wizard's neighborhood picker) without re-fetching; the server
// stays the source of truth.
package entitycache

import (
	"sort"
	"sync"
)

// Cache is an id-keyed mirror of one collection. The zero id is never
// stored. T is kept by value, so callers cannot mutate cached records.
type Cache[T any] struct {
	mu    sync.RWMutex
	idOf  func(T) int
	items map[int]T
}

// New builds a cache using idOf to extract each record's id.
func New[T any](idOf func(T) int) *Cache[T] {
	return &Cache[T]{idOf: idOf, items: make(map[int]T)}
}

// Upsert inserts or replaces one record.
func (c *Cache[T]) Upsert(item T) {
	id := c.idOf(item)
	if id == 0 {
		return
	}
	c.mu.Lock()
	c.items[id] = item
	c.mu.Unlock()
}

// UpsertAll inserts or replaces every record in items.
func (c *Cache[T]) UpsertAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		if id := c.idOf(item); id != 0 {
			c.items[id] = item
		}
	}
}

// SetAll replaces the whole mirror with items.
func (c *Cache[T]) SetAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[int]T, len(items))
	for _, item := range items {
		if id := c.idOf(item); id != 0 {
			c.items[id] = item
		}
	}
}

// Remove drops the record with the given id.
func (c *Cache[T]) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
}

// ByID returns the record with the given id.
func (c *Cache[T]) ByID(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// All returns every record ordered by id.
func (c *Cache[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}

// Len reports how many records are mirrored.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
