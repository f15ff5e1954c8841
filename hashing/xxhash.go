package hashing

import "github.com/cespare/xxhash/v2"

var _ Strategy = XXHash{}

// XXHash hashes with xxHash64. A zero Seed uses the unseeded variant.
type XXHash struct {
	Seed uint64
}

func (x XXHash) Hash(s string) Digest {
	if x.Seed == 0 {
		return Digest(xxhash.Sum64String(s))
	}
	d := xxhash.NewWithSeed(x.Seed)
	_, _ = d.WriteString(s)
	return Digest(d.Sum64())
}
