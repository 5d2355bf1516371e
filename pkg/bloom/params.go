package bloom

import (
	"fmt"
	"math"
)

// OptimalParams derives the bit count m and hash count k that minimize the
// false positive rate for expectedItems entries: m = -n*ln(p)/ln(2)^2
// rounded up, k = m/n*ln(2) rounded to nearest, both clamped to at least 1.
func OptimalParams(expectedItems int, falsePositiveRate float64) (uint64, int, error) {
	if expectedItems <= 0 {
		return 0, 0, fmt.Errorf("%w: expected items must be positive, got %d", ErrInvalidParameter, expectedItems)
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		return 0, 0, fmt.Errorf("%w: false positive rate must be in (0, 1), got %v", ErrInvalidParameter, falsePositiveRate)
	}

	n := float64(expectedItems)
	m := uint64(math.Ceil(-(n * math.Log(falsePositiveRate)) / (math.Ln2 * math.Ln2)))
	if m < 1 {
		m = 1
	}
	k := int(math.Round(float64(m) / n * math.Ln2))
	if k < 1 {
		k = 1
	}
	return m, k, nil
}
