package regression_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit"
	"github.com/katalvlaran/algokit/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestLinear_Noiseless recovers y = 2x exactly.
func TestLinear_Noiseless(t *testing.T) {
	m, err := regression.Linear([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Slope, tol)
	assert.InDelta(t, 0, m.Intercept, tol)
	assert.InDelta(t, 12, m.Predict(6), tol)
	assert.Equal(t, 5, m.N)
}

// TestLinear_Intercept recovers a negative slope and a non-zero intercept.
func TestLinear_Intercept(t *testing.T) {
	x := []float64{-2, 0, 1, 3, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = -0.5*v + 7
	}
	m, err := regression.Linear(x, y)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, m.Slope, tol)
	assert.InDelta(t, 7, m.Intercept, tol)
	assert.InDeltaSlice(t, []float64{7, 2}, m.PredictAll([]float64{0, 10}), tol)
}

// TestLinear_TwoPoints fits the line through exactly two samples.
func TestLinear_TwoPoints(t *testing.T) {
	m, err := regression.Linear([]float64{1, 3}, []float64{1, 5})
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Slope, tol)
	assert.InDelta(t, -1, m.Intercept, tol)
}

// TestLinear_Noisy checks the fit stays close on noisy data and that the
// residuals of an OLS fit sum to ~0.
func TestLinear_Noisy(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	x := make([]float64, 500)
	y := make([]float64, 500)
	for i := range x {
		x[i] = float64(i) / 10
		y[i] = 3*x[i] + 1 + r.NormFloat64()*0.5
	}
	m, err := regression.Linear(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 3, m.Slope, 0.05)
	assert.InDelta(t, 1, m.Intercept, 0.2)

	var residual float64
	for i := range x {
		residual += y[i] - m.Predict(x[i])
	}
	assert.InDelta(t, 0, residual, 1e-6)

	r2, err := m.RSquared(x, y)
	require.NoError(t, err)
	assert.Greater(t, r2, 0.99)
}

// TestLinear_Errors covers configuration and numerical failures.
func TestLinear_Errors(t *testing.T) {
	_, err := regression.Linear([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)
	assert.ErrorIs(t, err, algokit.ErrConfiguration)

	_, err = regression.Linear(nil, nil)
	assert.ErrorIs(t, err, regression.ErrEmptyInput)

	_, err = regression.Linear([]float64{4}, []float64{9})
	assert.ErrorIs(t, err, regression.ErrZeroVariance, "single sample")
	assert.ErrorIs(t, err, algokit.ErrNumerical)

	_, err = regression.Linear([]float64{0.1, 0.1, 0.1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, regression.ErrZeroVariance, "constant x")

	_, err = regression.Linear([]float64{1, math.Inf(1)}, []float64{1, 2})
	assert.ErrorIs(t, err, regression.ErrNonFinite)
	_, err = regression.Linear([]float64{1, 2}, []float64{math.NaN(), 2})
	assert.ErrorIs(t, err, regression.ErrNonFinite)
}

// TestLinear_LargeOffset fits x values that share a large offset, where the
// raw-moment form cancels catastrophically.
func TestLinear_LargeOffset(t *testing.T) {
	for _, off := range []float64{1e6, 1e8, 1e9, 1e12} {
		x := []float64{off, off + 1, off + 2, off + 3}
		y := []float64{1, 3, 5, 7}

		m, err := regression.Linear(x, y)
		require.NoError(t, err, "offset %g", off)
		assert.InDelta(t, 2.0, m.Slope, 1e-6, "offset %g", off)
		assert.InDelta(t, 1-2*off, m.Intercept, 1e-3, "offset %g", off)
		assert.InDelta(t, 9.0, m.Predict(off+4), 1e-3, "offset %g", off)
	}
}

// TestLinear_Overflow rejects finite samples whose squares or sums leave the
// float64 range instead of returning a NaN model.
func TestLinear_Overflow(t *testing.T) {
	cases := map[string][2][]float64{
		"squared deviations": {{1e200, 2e200, 3e200}, {1, 2, 3}},
		"sum of x":           {{1e308, 1.5e308, 1.7e308}, {1, 2, 3}},
		"cross products":     {{-1e200, 0, 1e200}, {-1e200, 0, 1e200}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := regression.Linear(c[0], c[1])
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, regression.ErrNonFinite)
			assert.ErrorIs(t, err, algokit.ErrNumerical)
		})
	}

	m := regression.Model{Slope: 1}
	_, err := m.RSquared([]float64{0, 1}, []float64{-1e200, 1e200})
	assert.ErrorIs(t, err, regression.ErrNonFinite, "residual sums")
}

// TestModel_RSquared covers perfect, constant and error cases.
func TestModel_RSquared(t *testing.T) {
	m := regression.Model{Slope: 2}
	r2, err := m.RSquared([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 1, r2, tol)

	flat := regression.Model{Intercept: 5}
	r2, err = flat.RSquared([]float64{1, 2}, []float64{5, 5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r2)

	r2, err = flat.RSquared([]float64{1, 2}, []float64{4, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r2)

	_, err = m.RSquared([]float64{1}, []float64{})
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)
	_, err = m.RSquared(nil, nil)
	assert.ErrorIs(t, err, regression.ErrEmptyInput)
}

// TestModel_String renders the fitted line.
func TestModel_String(t *testing.T) {
	assert.Equal(t, "y = 2·x + -1", regression.Model{Slope: 2, Intercept: -1}.String())
}
