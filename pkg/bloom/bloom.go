// Package bloom implements a Bloom filter: a fixed-memory probabilistic set
// that answers membership queries with "definitely absent" or "possibly
// present".
package bloom

import (
	"fmt"
	"math"

	"github.com/mirkobrombin/go-foundation/pkg/options"
	"github.com/mirkobrombin/go-sieve/pkg/bitvec"
	"github.com/mirkobrombin/go-sieve/pkg/canonical"
	"github.com/mirkobrombin/go-sieve/pkg/probe"
)

var (
	ErrInvalidParameter  = fmt.Errorf("sieve: invalid parameter")
	ErrMismatchedFilters = fmt.Errorf("sieve: filters have different parameters")
)

// Filter is a probabilistic set. Add records items, MightContain reports
// membership with no false negatives: false means the item was never added,
// true may be wrong with probability near the configured rate.
//
// A Filter is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
type Filter struct {
	expectedItems int
	fpRate        float64
	numBits       uint64
	numHashes     int
	bits          *bitvec.Vector
	inserted      int
	encode        func(any) ([]byte, error)
	initial       []any
}

// New creates a Filter sized for expectedItems at the target false positive
// rate in (0, 1). The bit count and hash count derived here stay fixed for
// the filter's lifetime, Clear included. Options apply before any initial
// items are added.
func New(expectedItems int, falsePositiveRate float64, opts ...Option) (*Filter, error) {
	numBits, numHashes, err := OptimalParams(expectedItems, falsePositiveRate)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		expectedItems: expectedItems,
		fpRate:        falsePositiveRate,
		numBits:       numBits,
		numHashes:     numHashes,
		bits:          bitvec.New(numBits),
		encode:        canonical.Bytes,
	}
	options.Apply(f, opts...)

	for _, item := range f.initial {
		if err := f.Add(item); err != nil {
			return nil, err
		}
	}
	f.initial = nil
	return f, nil
}

// Add records item in the filter. Every call counts toward Len, duplicates
// included. If the item cannot be encoded the filter is left untouched and
// the error wraps canonical.ErrUnhashable.
func (f *Filter) Add(item any) error {
	data, err := f.encode(item)
	if err != nil {
		return fmt.Errorf("sieve: add: %w", err)
	}
	for _, pos := range probe.Indexes(data, f.numHashes, f.numBits) {
		f.bits.Set(pos)
	}
	f.inserted++
	return nil
}

// MightContain reports whether item may have been added. A false result is
// definitive. The filter is never mutated, not even on error.
func (f *Filter) MightContain(item any) (bool, error) {
	data, err := f.encode(item)
	if err != nil {
		return false, fmt.Errorf("sieve: query: %w", err)
	}
	for _, pos := range probe.Indexes(data, f.numHashes, f.numBits) {
		if !f.bits.Test(pos) {
			return false, nil
		}
	}
	return true, nil
}

// TestAndAdd reports whether item may have been present, then records it.
// Equivalent to MightContain followed by Add but hashes the item once.
func (f *Filter) TestAndAdd(item any) (bool, error) {
	data, err := f.encode(item)
	if err != nil {
		return false, fmt.Errorf("sieve: test-and-add: %w", err)
	}
	present := true
	for _, pos := range probe.Indexes(data, f.numHashes, f.numBits) {
		if !f.bits.Test(pos) {
			present = false
		}
		f.bits.Set(pos)
	}
	f.inserted++
	return present, nil
}

// Len returns the number of items added since construction or the last
// Clear, counting duplicates.
func (f *Filter) Len() int {
	return f.inserted
}

// Clear empties the filter. Bit count and hash count are preserved.
func (f *Filter) Clear() {
	f.bits.ClearAll()
	f.inserted = 0
}

// CurrentFalsePositiveRate estimates the probability that MightContain
// answers true for an item never added, given the inserts so far. A fresh
// or cleared filter reports 0.
func (f *Filter) CurrentFalsePositiveRate() float64 {
	if f.inserted == 0 {
		return 0
	}
	k := float64(f.numHashes)
	return math.Pow(1-math.Exp(-k*float64(f.inserted)/float64(f.numBits)), k)
}

// FillRatio returns the fraction of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.numBits)
}

// Merge ORs other into f. Both filters must have been built with the same
// bit count and hash count; insert counters accumulate.
func (f *Filter) Merge(other *Filter) error {
	if other == nil || other.numBits != f.numBits || other.numHashes != f.numHashes {
		return ErrMismatchedFilters
	}
	if err := f.bits.UnionWith(other.bits); err != nil {
		return fmt.Errorf("sieve: merge: %w", err)
	}
	f.inserted += other.inserted
	return nil
}

// Clone returns an independent copy of f.
func (f *Filter) Clone() *Filter {
	clone := *f
	clone.bits = f.bits.Clone()
	return &clone
}

func (f *Filter) ExpectedItems() int {
	return f.expectedItems
}

func (f *Filter) FalsePositiveRate() float64 {
	return f.fpRate
}

func (f *Filter) NumBits() uint64 {
	return f.numBits
}

// NumBytes returns the bit store footprint in whole bytes.
func (f *Filter) NumBytes() uint64 {
	return f.bits.Bytes()
}

func (f *Filter) NumHashes() int {
	return f.numHashes
}

// String implements fmt.Stringer for debug output.
func (f *Filter) String() string {
	return fmt.Sprintf("Filter(items=%d, rate=%g, bits=%d, hashes=%d, inserted=%d)",
		f.expectedItems, f.fpRate, f.numBits, f.numHashes, f.inserted)
}
