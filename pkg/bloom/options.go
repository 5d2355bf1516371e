package bloom

import (
	"github.com/mirkobrombin/go-foundation/pkg/options"
)

// Option defines a functional configuration for the Filter.
type Option = options.Option[Filter]

// WithInitialItems pre-loads the filter at construction, as if each item
// were passed to Add in order.
func WithInitialItems(items ...any) Option {
	return func(f *Filter) {
		f.initial = append(f.initial, items...)
	}
}

// WithEncoder replaces the canonical encoding used to turn items into
// hashable bytes. Add and MightContain must see the same encoder for the
// no-false-negatives guarantee to hold.
func WithEncoder(encode func(any) ([]byte, error)) Option {
	return func(f *Filter) {
		f.encode = encode
	}
}
