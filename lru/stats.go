package lru

// Stats tracks the cache's lifetime counters. Hits and Misses count lookups
// through Get and Peek; Evictions counts entries forced out by capacity
// pressure, Resize or Pop; Expirations counts entries discarded because an
// access observed them stale. A stale Pop bumps both Evictions and
// Expirations.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}
