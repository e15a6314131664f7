package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/algokit"
)

// NotFound is returned by the binary searches when no element matches.
const NotFound = -1

// DefaultThreshold is the minimum similarity FuzzySearch keeps by default.
const DefaultThreshold = 0.7

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = fmt.Errorf("search: invalid option supplied: %w", algokit.ErrConfiguration)

// errNilCache marks WithDistanceCache(nil); surfaced wrapped in ErrOptionViolation.
var errNilCache = errors.New("distance cache is nil")

const panicNilKey = "search: nil key extractor"

// Match pairs an item with its similarity to the query, in [0, 1].
type Match[T any] struct {
	Item       T
	Similarity float64
}

// Option configures fuzzy matching via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search runs.
type Option func(*Options)

// Options holds the resolved fuzzy-matching parameters.
type Options struct {
	// Threshold is the minimum similarity kept.
	Threshold float64

	// Limit, if > 0, keeps only the Limit best matches.
	Limit int

	// Cache, if non-nil, memoizes edit distances across calls.
	Cache *DistanceCache

	// Logger receives V(1) traces of each search.
	Logger logr.Logger

	err error
}

// DefaultOptions returns Options with Threshold=DefaultThreshold, no limit,
// no cache and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Logger:    logr.Discard(),
	}
}

// WithThreshold sets the minimum similarity. Similarities lie in [0, 1], so
// any t <= 0 keeps every item and any t > 1 keeps none. NaN is rejected.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) {
			o.err = fmt.Errorf("%w: threshold is NaN", ErrOptionViolation)
			return
		}
		o.Threshold = t
	}
}

// WithLimit keeps at most n matches. n == 0 disables the limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithDistanceCache memoizes edit distances in c.
func WithDistanceCache(c *DistanceCache) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, errNilCache)
			return
		}
		o.Cache = c
	}
}

// WithLogger routes search traces to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over the defaults and returns the first
// recorded violation, if any.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
