package regression

import (
	"fmt"
	"math"
)

// Linear fits y ≈ Slope·x + Intercept by ordinary least squares.
//
// Stages:
//  1. Validate: equal non-zero lengths, finite samples.
//  2. First pass: the means x̄ and ȳ.
//  3. Second pass: Sxx = Σ(x−x̄)² and Sxy = Σ(x−x̄)(y−ȳ).
//  4. Reject constant x (Sxx == 0) with ErrZeroVariance.
//  5. Slope = Sxy/Sxx, Intercept = ȳ − Slope·x̄. This equals the raw-moment
//     form (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²) but keeps precision when x
//     carries a large offset (timestamps, years).
//  6. Reject intermediate overflow with ErrNonFinite.
//
// Complexity: Time O(n), Memory O(1).
func Linear(x, y []float64) (*Model, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	var sx, sy float64
	constant := true
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			return nil, fmt.Errorf("%w: sample %d", ErrNonFinite, i)
		}
		if x[i] != x[0] {
			constant = false
		}
		sx += x[i]
		sy += y[i]
	}
	if constant {
		return nil, ErrZeroVariance
	}

	n := float64(len(x))
	mx, my := sx/n, sy/n
	var sxx, sxy float64
	for i := range x {
		dx := x[i] - mx
		sxx += dx * dx
		sxy += dx * (y[i] - my)
	}
	if !finite(mx) || !finite(my) || !finite(sxx) || !finite(sxy) {
		return nil, fmt.Errorf("%w: sums overflow", ErrNonFinite)
	}
	if sxx == 0 {
		return nil, ErrZeroVariance
	}

	slope := sxy / sxx
	intercept := my - slope*mx
	if !finite(slope) || !finite(intercept) {
		return nil, fmt.Errorf("%w: fitted line overflows", ErrNonFinite)
	}

	return &Model{
		Slope:     slope,
		Intercept: intercept,
		N:         len(x),
	}, nil
}

// Predict returns Slope·x + Intercept.
func (m Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// PredictAll applies Predict to every element of xs and returns a new slice.
func (m Model) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Predict(x)
	}

	return out
}

// RSquared returns the coefficient of determination of the model on (x, y):
// 1 − SSres/SStot. When y is constant, it is 1 for a perfect fit and 0
// otherwise.
func (m Model) RSquared(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var ssRes, ssTot float64
	for i := range x {
		r := y[i] - m.Predict(x[i])
		d := y[i] - mean
		ssRes += r * r
		ssTot += d * d
	}
	if !finite(ssRes) || !finite(ssTot) {
		return 0, fmt.Errorf("%w: residual sums overflow", ErrNonFinite)
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}
		return 0, nil
	}

	return 1 - ssRes/ssTot, nil
}

// String renders the model as "y = a·x + b".
func (m Model) String() string {
	return fmt.Sprintf("y = %g·x + %g", m.Slope, m.Intercept)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
