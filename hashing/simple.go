package hashing

import "unicode/utf16"

var _ Strategy = Simple{}

// Simple is the rolling hash h = (h<<5) - h + c over the UTF-16 code units of
// the input, wrapped to a signed 32-bit integer after every step and seeded
// at 0.
//
// It is fast and intentionally naive: long inputs collide easily.
type Simple struct{}

// Hash returns Sum32 zero-extended to a Digest.
func (s Simple) Hash(str string) Digest {
	return Digest(uint32(s.Sum32(str)))
}

// Sum32 returns the raw signed 32-bit hash.
func (Simple) Sum32(str string) int32 {
	var h int32
	for _, r := range str {
		if r >= 0x10000 {
			// astral runes count as a surrogate pair
			hi, lo := utf16.EncodeRune(r)
			h = (h << 5) - h + hi
			h = (h << 5) - h + lo
			continue
		}
		h = (h << 5) - h + r
	}
	return h
}
