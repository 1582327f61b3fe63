package lru

import "time"

// entry is a single cached key-value pair with optional staleness. It
// doubles as a node in the recency list: prev and next are intrusive links
// owned by recencyList, and all pointer manipulation happens there.
//
// key, value, createdAt and ttl are immutable once the entry is
// constructed. The only thing that ever changes about a live entry is its
// position in the list.
type entry struct {
	key       string
	value     string
	createdAt time.Time
	ttl       time.Duration

	// Linked list pointers for recency tracking
	prev *entry
	next *entry
}

// staleAt reports whether the entry has outlived its TTL at the given time.
// A zero TTL means the entry never goes stale. An age exactly equal to the
// TTL is still fresh.
func (e *entry) staleAt(now time.Time) bool {
	if e.ttl == 0 {
		return false
	}
	return now.Sub(e.createdAt) > e.ttl
}

// bytesUsed returns the total bytes used by the key and value.
func (e *entry) bytesUsed() uint64 {
	return uint64(len(e.key) + len(e.value))
}
