package lru

import (
	"iter"
	"time"
)

// Item is a point-in-time snapshot of a single cache entry.
type Item struct {
	Key       string
	Value     string
	CreatedAt time.Time
	TTL       time.Duration
}

// All returns an iterator over the cached key-value pairs ordered from most
// to least recently used. Enumeration is a read-only view: it does not
// promote, evict or filter stale entries, and every call walks fresh from
// the current head. The cache must not be mutated while the iteration is in
// flight.
func (c *Cache) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for e := c.list.front(); e != nil; e = e.next {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the cached key-value pairs ordered from
// least to most recently used. The same read-only contract as All applies.
func (c *Cache) Backward() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for e := c.list.back(); e != nil; e = e.prev {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the cached keys ordered from most to least recently used.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.index))
	for e := c.list.front(); e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the cached values ordered from most to least recently
// used.
func (c *Cache) Values() []string {
	values := make([]string, 0, len(c.index))
	for e := c.list.front(); e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// Items returns entry snapshots ordered from most to least recently used.
func (c *Cache) Items() []Item {
	items := make([]Item, 0, len(c.index))
	for e := c.list.front(); e != nil; e = e.next {
		items = append(items, snapshot(e))
	}
	return items
}

// ItemsReverse returns entry snapshots ordered from least to most recently
// used.
func (c *Cache) ItemsReverse() []Item {
	items := make([]Item, 0, len(c.index))
	for e := c.list.back(); e != nil; e = e.prev {
		items = append(items, snapshot(e))
	}
	return items
}

func snapshot(e *entry) Item {
	return Item{
		Key:       e.key,
		Value:     e.value,
		CreatedAt: e.createdAt,
		TTL:       e.ttl,
	}
}
