package cluster

import (
	"context"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/algokit"
)

// Defaults for Options.
const (
	// DefaultMaxIterations bounds the number of assign/update rounds.
	DefaultMaxIterations = 100

	// DefaultEpsilon is the centroid movement below which KMeans stops.
	DefaultEpsilon = 1e-4
)

// Sentinel errors for k-means.
var (
	// ErrEmptyInput is returned when no points are given.
	ErrEmptyInput = fmt.Errorf("cluster: no points: %w", algokit.ErrConfiguration)

	// ErrDimensionMismatch is returned when vectors are empty or differ in length.
	ErrDimensionMismatch = fmt.Errorf("cluster: dimension mismatch: %w", algokit.ErrConfiguration)

	// ErrInvalidK is returned when k is outside [1, len(points)].
	ErrInvalidK = fmt.Errorf("cluster: k out of range: %w", algokit.ErrConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("cluster: invalid option supplied: %w", algokit.ErrConfiguration)

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("cluster: non-finite coordinate: %w", algokit.ErrNumerical)
)

// Result is the outcome of a KMeans run.
type Result struct {
	// Clusters[i] lists the input indices assigned to centroid i, ascending.
	// A cluster may be empty.
	Clusters [][]int

	// Centroids[i] is the mean of Clusters[i] (or its last position if empty).
	Centroids [][]float64

	// Labels[p] is the centroid index of input point p.
	Labels []int

	// Inertia is the sum of squared distances of points to their centroids.
	// It saturates to +Inf once a squared distance leaves the float64 range
	// (coordinates differing by more than about 1e154); the clustering itself
	// is unaffected.
	Inertia float64

	// Iterations is the number of assign/update rounds performed.
	Iterations int

	// Converged reports whether the run stopped on Epsilon rather than MaxIterations.
	Converged bool
}

// Option configures KMeans via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// KMeans is invoked.
type Option func(*Options)

// Options holds the resolved k-means parameters.
type Options struct {
	// MaxIterations bounds the number of rounds; must be > 0.
	MaxIterations int

	// Epsilon is the convergence threshold on centroid movement; must be ≥ 0.
	Epsilon float64

	// Source drives initial centroid selection. Nil means a time-seeded
	// generator, unless a seed was set with WithSeed.
	Source RandomSource

	// Workers is the number of goroutines used for the assignment step.
	Workers int

	// Ctx allows cancellation between rounds.
	Ctx context.Context

	// Logger receives V(1) run summaries and V(2) per-round traces.
	Logger logr.Logger

	seed   int64
	seeded bool
	err    error
}

// DefaultOptions returns Options with DefaultMaxIterations, DefaultEpsilon,
// one worker, context.Background() and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		Workers:       1,
		Ctx:           context.Background(),
		Logger:        logr.Discard(),
	}
}

// WithMaxIterations sets the round limit. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithEpsilon sets the convergence threshold. eps must be finite and ≥ 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithSeed makes initialization deterministic: every call creates a fresh
// generator from seed. Ignored when WithRandomSource is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRandomSource injects the generator used for initialization.
func WithRandomSource(src RandomSource) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: RandomSource cannot be nil", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithWorkers parallelizes the assignment step over n goroutines. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithContext sets a context checked before every round.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes run traces to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over the defaults, returns the first recorded
// violation, and resolves the random source.
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
	if o.Source == nil {
		o.Source = newSource(o.seed, o.seeded)
	}

	return o, nil
}
