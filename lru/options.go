package lru

import (
	"time"

	"github.com/lightningnetwork/lnd/clock"
)

// config holds the tunable knobs resolved by New before a Cache is built.
type config struct {
	// defaultTTL is applied to entries stored without an explicit TTL.
	// Zero means such entries never go stale.
	defaultTTL time.Duration

	// allowStale makes accesses serve a stale entry's value one last time
	// while it is being discarded, instead of reporting a plain miss.
	allowStale bool

	// clock is the time source consulted for entry creation times and
	// staleness checks.
	clock clock.Clock
}

// defaultConfig returns a config populated with default values.
func defaultConfig() *config {
	return &config{
		clock: clock.NewDefaultClock(),
	}
}

// Option is a functional modifier applied to the default config by New.
type Option func(*config)

// WithDefaultTTL sets the TTL applied to entries stored via Put. Entries
// stored through PutWithTTL are unaffected. A zero duration (the default)
// means entries never go stale.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.defaultTTL = ttl
	}
}

// WithAllowStale controls what happens when an access finds a stale entry.
// When set, Get and Pop return the stale value one last time while the entry
// is still discarded, and Peek reports it as present. The default is to
// treat stale entries as misses.
func WithAllowStale(allow bool) Option {
	return func(c *config) {
		c.allowStale = allow
	}
}

// WithClock sets a non-default clock dependency. This is mostly useful to
// control staleness from tests. The clock must be non-nil.
func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}
