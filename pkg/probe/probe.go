// Package probe derives bit positions for filter items via double hashing.
package probe

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// salt keeps the second digest decorrelated from the first even where the
// algorithms alone would collide.
const salt = "$_salt_$"

// Digests returns the two independent base digests of data: the first word
// of murmur3's 128-bit digest and a salted xxhash64.
func Digests(data []byte) (uint64, uint64) {
	hashA, _ := murmur3.Sum128(data)

	d := xxhash.New()
	_, _ = d.Write(data)
	_, _ = d.WriteString(salt)
	return hashA, d.Sum64()
}

// Indexes derives k probe positions in [0, m) for data. Position i is
// (hashA + i*hashB) mod m, so the k positions cost two hash computations.
// The result is stable for equal data and equal (k, m).
func Indexes(data []byte, k int, m uint64) []uint64 {
	hashA, hashB := Digests(data)

	positions := make([]uint64, k)
	for i := range positions {
		positions[i] = (hashA + uint64(i)*hashB) % m
	}
	return positions
}
