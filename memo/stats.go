package memo

import "sync/atomic"

// Stats is a snapshot of a Function's counters.
type Stats struct {
	// Hits is the number of calls answered from the store.
	Hits uint64

	// Misses is the number of calls that invoked the wrapped function.
	Misses uint64

	// Failures is the number of misses whose wrapped call returned an error.
	Failures uint64

	// Collisions is the number of lookups that found an entry for another key.
	// Always zero without WithCollisionCheck.
	Collisions uint64

	// Entries is the number of results held by the store.
	Entries uint64
}

type counters struct {
	hits       atomic.Uint64
	misses     atomic.Uint64
	failures   atomic.Uint64
	collisions atomic.Uint64
}
