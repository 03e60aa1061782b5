package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// DefaultCacheSize is the default result cache capacity.
const DefaultCacheSize = 256

// ResultCache is an LRU cache for query responses. Every entry remembers the
// identity of the snapshot it was computed against; an entry whose snapshot
// no longer matches the current one is treated as a miss, so a cached result
// can never outlive the index state that produced it.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
}

type cacheEntry struct {
	response   *Response
	snapshotID uint64
}

// NewResultCache creates a result cache with the given capacity.
// Non-positive capacities fall back to DefaultCacheSize.
func NewResultCache(maxSize int) *ResultCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &ResultCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// cacheKey derives the cache key from the full request shape, so requests
// differing only in limit, domain filter, or semantic flag never collide.
func cacheKey(req *Request) string {
	data := fmt.Sprintf("%s\x00%t\x00%d\x00%s", req.Query, req.Semantic, req.Limit, req.Domain)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:16])
}

// Get returns the cached response for a request if one exists and was
// computed against the snapshot identified by snapshotID.
func (c *ResultCache) Get(req *Request, snapshotID uint64) (*Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(req)
	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if entry.snapshotID != snapshotID {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return nil, false
	}

	c.moveToEnd(key)
	return entry.response, true
}

// Put stores a response computed against the given snapshot, evicting the
// least recently used entry when the cache is full.
func (c *ResultCache) Put(req *Request, snapshotID uint64, response *Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(req)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{response: response, snapshotID: snapshotID}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{response: response, snapshotID: snapshotID}
	c.order = append(c.order, key)
}

// Invalidate drops every cached entry.
func (c *ResultCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
}

// Size returns the number of cached entries.
func (c *ResultCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ResultCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ResultCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
