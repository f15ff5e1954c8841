// Package store holds memoized results keyed by digest.
//
// Entries are written once and never replaced or evicted: InsertIfAbsent
// keeps the first arrival for a digest. A Store belongs to exactly one
// memoized function.
package store

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/hashing"
)

// Entry is one memoized result.
type Entry struct {
	// Key is the encoded argument tuple the result was computed for.
	// It is only populated when the owning function checks for collisions.
	Key    string
	Result any
}

// Store is the digest to result mapping behind a memoized function.
type Store interface {
	Load(d hashing.Digest) (e Entry, ok bool, err error)
	InsertIfAbsent(d hashing.Digest, e Entry) (inserted bool, err error)
	Len() int
}

// ErrUnexpectedRecord means a backend returned something it did not store.
var ErrUnexpectedRecord = fmt.Errorf("unexpected record in store")
