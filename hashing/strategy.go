// Package hashing reduces an encoded argument tuple to a fixed-size Digest.
//
// Two strategies ship with the package: Simple, the classic 32-bit rolling
// string hash, and XXHash, a seeded 64-bit xxHash. Any type with a
// Hash(string) Digest method can be plugged into memo.New instead.
//
// Digests are not collision-free. Two distinct encodings that hash to the
// same Digest share one cache entry.
package hashing

// Digest is the cache key produced by a Strategy.
type Digest uint64

// Strategy hashes an encoded argument tuple.
// Implementations must be deterministic for the lifetime of the process.
type Strategy interface {
	Hash(s string) Digest
}

// Func adapts a plain function to a Strategy.
type Func func(s string) Digest

func (f Func) Hash(s string) Digest { return f(s) }
