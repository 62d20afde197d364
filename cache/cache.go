// Package cache provides a thread-safe sharded key-value cache used to
// memoize expensive geometry conversions.
//
// Entries live until Clear is called: the cached values are keyed by a
// geometry fingerprint, so a stale entry is a correctness bug rather
// than a capacity concern, and eviction is the caller's decision.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// shardCount is the number of shards for reduced lock contention.
// Must be a power of 2 for fast modulo via bitwise AND.
const shardCount = 16

// shardMask is used for fast shard selection (shardCount - 1).
const shardMask = shardCount - 1

// Sharded is a thread-safe sharded cache with string keys.
//
// Features:
//   - 16 shards for reduced lock contention
//   - Atomic hit/miss statistics for monitoring
//   - Zero allocations on cache hit
//
// Readers and writers may run concurrently; a single editing session
// typically uses it single-threaded.
type Sharded[V any] struct {
	shards [shardCount]*shard[V]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// shard is a single shard of the cache with its own lock.
type shard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty sharded cache.
func New[V any]() *Sharded[V] {
	c := &Sharded[V]{}
	for i := range c.shards {
		c.shards[i] = &shard[V]{entries: make(map[string]V)}
	}
	return c
}

// hashKey computes the FNV-1a hash of a string key.
func hashKey(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// getShard returns the shard for a given key.
func (c *Sharded[V]) getShard(key string) *shard[V] {
	return c.shards[hashKey(key)&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Sharded[V]) Get(key string) (V, bool) {
	s := c.getShard(key)
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores a value in the cache, replacing any existing entry.
// The value is stored as-is (not copied); callers should not modify it
// after caching.
func (c *Sharded[V]) Set(key string, value V) {
	s := c.getShard(key)
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// GetOrCreate returns the cached value for key, or stores and returns
// the result of create. The create function runs with the shard lock
// held to prevent duplicate computation; keep it fast.
func (c *Sharded[V]) GetOrCreate(key string, create func() V) V {
	s := c.getShard(key)

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check after acquiring the write lock.
	if v, ok := s.entries[key]; ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)
	v = create()
	s.entries[key] = v
	return v
}

// Delete removes a single entry.
func (c *Sharded[V]) Delete(key string) {
	s := c.getShard(key)
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Clear removes every entry from the cache.
func (c *Sharded[V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]V)
		s.mu.Unlock()
	}
}

// Len returns the total number of cached entries.
func (c *Sharded[V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Stats returns the cumulative hit and miss counts.
func (c *Sharded[V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
