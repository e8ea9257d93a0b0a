// SPDX-License-Identifier: MIT
// Package matrix: constructor options.

package matrix

// Option tunes a matrix graph constructor before first use.
// Options never fail: out-of-range values are clamped, keeping
// construction total.
type Option func(*options)

// options collects constructor tuning shared by both matrix kinds.
type options struct {
	capacity int // expected node count; 0 means grow from empty
}

// newOptions folds opts over the zero configuration.
func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCapacity reserves slot-table capacity for an expected node count.
// The matrix itself still grows per node; the hint avoids index rehashing
// and slice reallocation during bulk loading. Hints below 1 are ignored.
// Complexity: O(1).
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
