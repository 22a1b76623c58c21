// Package subgroup: shared types, sentinel errors, and functional options.
package subgroup

import "errors"

var (
	// ErrGroupMismatch is returned when an operation combines subgroups or
	// words built over different free groups.
	ErrGroupMismatch = errors.New("subgroup: elements belong to different free groups")

	// ErrNotContained is returned by Express and the relative operations
	// when a word or subgroup is not inside the expected subgroup.
	ErrNotContained = errors.New("subgroup: element is not contained in the subgroup")

	// ErrInfiniteIndex is returned by the index and enumeration operations
	// when the subgroup has infinite index.
	ErrInfiniteIndex = errors.New("subgroup: subgroup has infinite index")

	// ErrNormalizationDepth is returned when the normal-closure iteration
	// does not stabilize within the configured round limit. The closure is
	// then infinitely generated or simply too large; raise the limit with
	// WithMaxRounds if the latter.
	ErrNormalizationDepth = errors.New("subgroup: normalization did not stabilize within the round limit")
)

// DefaultMaxRounds bounds the normal-closure iteration. Each round conjugates
// the current basis by every ambient generator, so the limit caps graph
// growth, not just time.
const DefaultMaxRounds = 32

// Option configures the iterative operations.
type Option func(*options)

type options struct {
	maxRounds int
}

// WithMaxRounds overrides DefaultMaxRounds for one call. n must be positive.
func WithMaxRounds(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRounds = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{maxRounds: DefaultMaxRounds}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
