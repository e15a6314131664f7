package regression

import (
	"fmt"

	"github.com/katalvlaran/algokit"
)

// Sentinel errors for linear regression.
var (
	// ErrEmptyInput is returned when no samples are given.
	ErrEmptyInput = fmt.Errorf("regression: no samples: %w", algokit.ErrConfiguration)

	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = fmt.Errorf("regression: x and y lengths differ: %w", algokit.ErrConfiguration)

	// ErrZeroVariance is returned when x has no spread, so the slope is undefined.
	ErrZeroVariance = fmt.Errorf("regression: x has zero variance: %w", algokit.ErrNumerical)

	// ErrNonFinite is returned when a sample is NaN or ±Inf, or when finite
	// samples overflow float64 during the fit.
	ErrNonFinite = fmt.Errorf("regression: non-finite value: %w", algokit.ErrNumerical)
)

// Model is a fitted line. The zero value predicts 0 everywhere.
type Model struct {
	// Slope is the change in y per unit of x.
	Slope float64

	// Intercept is the predicted y at x = 0.
	Intercept float64

	// N is the number of samples the model was fitted on.
	N int
}
