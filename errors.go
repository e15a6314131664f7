package algokit

import "errors"

// Error categories shared by all subpackages. Subpackage sentinels wrap
// exactly one of them via fmt.Errorf("...: %w", ErrX).
var (
	// ErrConfiguration marks invalid input shape or parameters: mismatched
	// lengths, inconsistent dimensionality, out-of-range k, bad options.
	ErrConfiguration = errors.New("algokit: configuration error")

	// ErrNumerical marks numerically degenerate input such as zero variance
	// or non-finite samples.
	ErrNumerical = errors.New("algokit: numerical error")
)
