// Package lru implements a fixed-capacity in-process cache mapping string
// keys to string values, with least-recently-used eviction and optional
// per-entry staleness (TTL).
package lru

import (
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/satmihir/lrucache/internal/constants"
)

// Cache is an in-memory key-value store with a fixed entry capacity, LRU
// eviction and lazy per-entry staleness. A map gives O(1) key lookup and a
// doubly-linked list maintains recency ordering; every key in the index
// corresponds to exactly one node in the list.
//
// Cache is not safe for concurrent use. Every mutating operation performs
// multi-step structural edits across the index and the list, so callers that
// need concurrent access must wrap the whole cache behind a single mutex or
// confine it to one owning goroutine.
type Cache struct {
	// capacity is the maximum number of live entries.
	capacity int

	// index maps each key to its list node. It is a derived lookup
	// structure: the list is the order authority, and both are updated
	// together on every mutation.
	index map[string]*entry

	// list orders entries from most (head) to least (tail) recently used.
	list recencyList

	// defaultTTL and allowStale hold the cache-wide staleness
	// configuration resolved at construction.
	defaultTTL time.Duration
	allowStale bool

	// clock is the time source used for entry creation and staleness.
	clock clock.Clock

	// bytesUsed counts the key and value bytes of all live entries.
	bytesUsed uint64

	stats Stats
}

// New constructs an empty cache bounded to the given number of entries.
// Returns ErrInvalidCapacity if capacity is not positive, and ErrInvalidTTL
// if a negative default TTL was configured.
func New(capacity int, opts ...Option) (*Cache, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.defaultTTL < 0 {
		return nil, ErrInvalidTTL
	}

	return &Cache{
		capacity:   capacity,
		index:      make(map[string]*entry, capacity),
		defaultTTL: cfg.defaultTTL,
		allowStale: cfg.allowStale,
		clock:      cfg.clock,
		// list is zero-initialized correctly (head: nil, tail: nil)
	}, nil
}

// Put stores the value for the given key and makes it the most recently used
// entry, applying the cache's default TTL.
func (c *Cache) Put(key, value string) error {
	return c.PutWithTTL(key, value, c.defaultTTL)
}

// PutWithTTL stores the value for the given key with an explicit TTL and
// makes it the most recently used entry. A zero TTL means the entry never
// goes stale, overriding any default; a negative TTL is rejected with
// ErrInvalidTTL.
//
// Overwriting a present key replaces its entry wholesale: the old node is
// dropped before the new one is linked, and the staleness clock restarts
// from now. If the key was absent and the cache is full, the least recently
// used entry is evicted first.
func (c *Cache) PutWithTTL(key, value string, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if ttl < 0 {
		return ErrInvalidTTL
	}

	// An overwrite must never leave two nodes for one key, so the old node
	// is fully unlinked and deindexed before the replacement exists.
	if old, ok := c.index[key]; ok {
		c.removeEntry(old)
	}

	// Only a genuinely new key can push the cache past capacity.
	if len(c.index) == c.capacity {
		c.evictOldest()
	}

	e := &entry{
		key:       key,
		value:     value,
		createdAt: c.clock.Now(),
		ttl:       ttl,
	}
	c.list.pushFront(e)
	c.index[key] = e
	c.bytesUsed += e.bytesUsed()

	return nil
}

// Get returns the value for the given key and promotes it to most recently
// used. Returns false if the key is absent or its entry is stale. A stale
// hit behaves like a miss with a side effect: the entry is discarded for
// good, never resurrected. With the allow-stale option the discarded value
// is still returned one last time.
//
// Promotion keeps the entry's original creation time and TTL; refreshing the
// recency order does not reset the staleness clock.
func (c *Cache) Get(key string) (string, bool) {
	e, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		return "", false
	}

	if e.staleAt(c.clock.Now()) {
		c.removeEntry(e)
		c.stats.Expirations++
		log.Tracef("Discarded stale entry for key=%q (age exceeded "+
			"ttl=%v)", key, e.ttl)

		if c.allowStale {
			c.stats.Hits++
			return e.value, true
		}
		c.stats.Misses++
		return "", false
	}

	c.list.moveToFront(e)
	c.stats.Hits++
	return e.value, true
}

// Peek returns the value for the given key without promoting it. The same
// staleness policy as Get applies, but a stale entry is left in place: Peek
// never mutates the cache.
func (c *Cache) Peek(key string) (string, bool) {
	e, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		return "", false
	}
	if e.staleAt(c.clock.Now()) && !c.allowStale {
		c.stats.Misses++
		return "", false
	}

	c.stats.Hits++
	return e.value, true
}

// Contains reports whether the key is currently indexed. It answers
// membership only: staleness is not consulted and recency order is not
// touched, so a key whose entry has gone stale still reports true until an
// access discards it.
func (c *Cache) Contains(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Delete removes the given key if present and reports whether it was. The
// index lookup happens before either structure is mutated since the node's
// neighbor pointers are needed to repair the list.
func (c *Cache) Delete(key string) bool {
	e, ok := c.index[key]
	if !ok {
		return false
	}

	c.removeEntry(e)
	return true
}

// Pop evicts the least recently used entry and returns its value. Returns
// false if the cache is empty, or if the evicted entry was stale (the entry
// is evicted either way, consistent with Get's stale-miss behavior). With
// the allow-stale option a stale value is still returned.
func (c *Cache) Pop() (string, bool) {
	tail := c.list.back()
	if tail == nil {
		return "", false
	}

	c.removeEntry(tail)
	c.stats.Evictions++

	if tail.staleAt(c.clock.Now()) {
		c.stats.Expirations++
		if !c.allowStale {
			return "", false
		}
	}
	return tail.value, true
}

// Len returns the number of live entries, including any whose staleness has
// not yet been observed by an access.
func (c *Cache) Len() int {
	return len(c.index)
}

// Cap returns the current capacity bound.
func (c *Cache) Cap() int {
	return c.capacity
}

// BytesUsed returns the total key and value bytes held by live entries.
func (c *Cache) BytesUsed() uint64 {
	return c.bytesUsed
}

// Stats returns a snapshot of the cache's lifetime counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Resize re-bounds the cache to the given capacity, evicting least recently
// used entries until the bound is satisfied, and returns the number evicted.
// Returns ErrInvalidCapacity if capacity is not positive.
func (c *Cache) Resize(capacity int) (int, error) {
	if capacity < 1 {
		return 0, ErrInvalidCapacity
	}

	evicted := 0
	for len(c.index) > capacity {
		c.evictOldest()
		evicted++
	}
	c.capacity = capacity

	log.Infof("Resized cache to capacity=%d, evicted %d entries",
		capacity, evicted)
	return evicted, nil
}

// Purge drops every entry at once. The index is replaced and the list
// endpoints cleared rather than unlinking node by node, so previously
// obtained iterators or snapshots must not be trusted afterwards. Lifetime
// counters survive a purge.
func (c *Cache) Purge() {
	dropped := len(c.index)
	c.index = make(map[string]*entry, c.capacity)
	c.list = recencyList{}
	c.bytesUsed = 0

	log.Debugf("Purged cache, dropped %d entries", dropped)
}

// evictOldest removes the current tail to relieve capacity pressure.
func (c *Cache) evictOldest() {
	tail := c.list.back()
	if tail == nil {
		return
	}

	c.removeEntry(tail)
	c.stats.Evictions++
	log.Debugf("Evicted lru entry with key=%q", tail.key)
}

// removeEntry unlinks the node from the list, deletes its index entry and
// releases its byte accounting. The two structures always change together;
// this is the only removal path.
func (c *Cache) removeEntry(e *entry) {
	c.list.remove(e)
	delete(c.index, e.key)
	c.bytesUsed -= e.bytesUsed()
}

func validateKey(key string) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	if len(key) > constants.MaxKeySizeBytes {
		return ErrKeyTooLong
	}

	return nil
}
