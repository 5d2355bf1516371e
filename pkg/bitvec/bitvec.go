package bitvec

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var ErrLengthMismatch = fmt.Errorf("bitvec: vectors have different lengths")

// Vector is a fixed-length packed bit array.
type Vector struct {
	bits *bitset.BitSet
	size uint64
}

// New creates a zeroed Vector of size bits.
func New(size uint64) *Vector {
	return &Vector{
		bits: bitset.New(uint(size)),
		size: size,
	}
}

// Set turns bit i on. Callers must keep i < Len().
func (v *Vector) Set(i uint64) {
	v.bits.Set(uint(i))
}

// Test reports whether bit i is on.
func (v *Vector) Test(i uint64) bool {
	return v.bits.Test(uint(i))
}

// ClearAll turns every bit off without changing the length.
func (v *Vector) ClearAll() {
	v.bits.ClearAll()
}

// Len returns the length in bits.
func (v *Vector) Len() uint64 {
	return v.size
}

// Bytes returns the storage footprint in whole bytes.
func (v *Vector) Bytes() uint64 {
	return (v.size + 7) / 8
}

// Count returns the number of bits currently on.
func (v *Vector) Count() uint64 {
	return uint64(v.bits.Count())
}

// UnionWith ORs other into v. Both vectors must have the same length.
func (v *Vector) UnionWith(other *Vector) error {
	if other == nil || other.size != v.size {
		return ErrLengthMismatch
	}
	v.bits.InPlaceUnion(other.bits)
	return nil
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{
		bits: v.bits.Clone(),
		size: v.size,
	}
}

// Equal reports whether v and other have the same length and the same bits on.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || other.size != v.size {
		return false
	}
	return v.bits.Equal(other.bits)
}
