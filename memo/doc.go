// Package memo memoizes pure functions over arbitrary argument tuples.
//
// A Function wraps f and answers every call whose arguments encode to a digest
// it has already seen with the result stored under that digest. Otherwise it
// calls f, stores the result and returns it. The key pipeline is pluggable:
//
//	args -> valuemap.Mapper -> keyenc.Encode -> hashing.Strategy -> store.Store
//
// Memoization assumes referential transparency. A result is never recomputed
// or evicted once stored, so f must return the same output for the same
// input and must not depend on time, I/O or mutable state.
//
// Results are returned by shared reference. Mutating a returned slice, map or
// pointer mutates the cached copy for every later hit; use InvokeCopy when
// callers cannot be trusted to treat results as read-only.
//
// Digests are not collision-free. By default a colliding call silently gets
// the result stored by the first call that produced the digest. WithCollisionCheck
// keeps the encoded key alongside each entry and verifies it on lookup.
//
// Example:
//
//	concat, _ := memo.New(func(_ any, args ...any) (string, error) {
//	    return fmt.Sprint(args...), nil
//	}, memo.WithHashingStrategy(hashing.XXHash{}))
//	s, _ := concat.Invoke(nil, 1, "a") // "1a", computed
//	s, _ = concat.Invoke(nil, 1, "a")  // "1a", from cache
package memo
