package apiclient

import (
	"sync"
	"time"
)

// Resource identifies a cacheable backend collection.
type Resource string

const (
	ResourceBorough      Resource = "borough"
	ResourceNeighborhood Resource = "neighborhood"
	ResourceProposal     Resource = "proposal"
	ResourceAnalytics    Resource = "analytics"
)

// Tag names a slice of the backend a cached response depends on: either a
// whole collection (ID == 0) or a single record. A mutation invalidates by
// bumping the generation counter of every tag it touches; cached entries
// remember the counter values they were stored under and are stale as soon
// as any of them moves.
type Tag struct {
	Resource Resource
	ID       int
}

// ListTag tags the whole collection of a resource.
func ListTag(r Resource) Tag { return Tag{Resource: r} }

// IDTag tags one record of a resource.
func IDTag(r Resource, id int) Tag { return Tag{Resource: r, ID: id} }

type cacheEntry struct {
	value    any
	storedAt time.Time
	tags     []Tag
	gens     []uint64
}

// tagCache is the response cache of the client: request-key → entry, plus a
// generation counter per tag. Reads snapshot the counters of their tags at
// store time; Invalidate bumps counters, which lazily expires every entry
// holding a stale snapshot. Entries also age out after ttl so that data
// mutated outside this process is eventually re-fetched.
type tagCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	gens    map[Tag]uint64
	ttl     time.Duration
	now     func() time.Time
}

func newTagCache(ttl time.Duration) *tagCache {
	return &tagCache{
		entries: make(map[string]cacheEntry),
		gens:    make(map[Tag]uint64),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *tagCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	for i, tag := range entry.tags {
		if c.gens[tag] != entry.gens[i] {
			delete(c.entries, key)
			return nil, false
		}
	}
	return entry.value, true
}

func (c *tagCache) put(key string, value any, tags []Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	gens := make([]uint64, len(tags))
	for i, tag := range tags {
		gens[i] = c.gens[tag]
	}
	c.entries[key] = cacheEntry{
		value:    value,
		storedAt: c.now(),
		tags:     tags,
		gens:     gens,
	}
}

// invalidate bumps the generation of each tag, marking every entry stored
// under it stale. Entries are evicted lazily on the next get.
func (c *tagCache) invalidate(tags ...Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		c.gens[tag]++
	}
}
