// Package regression fits a one-variable linear model y ≈ Slope·x + Intercept
// by ordinary least squares.
//
// The fit is closed-form and O(n):
//
//	Slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	Intercept = (Σy − Slope·Σx) / n
//
// evaluated in the equivalent centered form Slope = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²,
// Intercept = ȳ − Slope·x̄, which stays accurate when x has a large offset.
//
// No iterative fitting and no regularization. The resulting Model is
// immutable.
//
// Degenerate input is reported, never turned into NaN:
//
//   - ErrEmptyInput     no samples
//   - ErrLengthMismatch len(x) != len(y)
//   - ErrZeroVariance   a single sample or constant x (the denominator is 0)
//   - ErrNonFinite      NaN or ±Inf samples, or sums that overflow float64
package regression
