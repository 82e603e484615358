package lagrange_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvinterp/core"
	"github.com/katalvlaran/lvinterp/lagrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lnPowPrime is the first derivative of (ln x)^(5/3).
func lnPowPrime(x float64) float64 {
	return (5.0 / 3) * math.Pow(math.Log(x), 2.0/3) / x
}

// TestEstimateError_LogPower reproduces the log-power fixture:
// M = max over knots, product = 4.5·0.5·3.5, divided by 3!.
func TestEstimateError_LogPower(t *testing.T) {
	x := []float64{2, 6, 10}

	got, err := lagrange.EstimateError(lnPowPrime, x, 6.5, len(x)-1)
	require.NoError(t, err)

	m := math.Max(lnPowPrime(2), math.Max(lnPowPrime(6), lnPowPrime(10)))
	assert.InDelta(t, m*4.5*0.5*3.5/6, got, 1e-12)
	assert.InDelta(t, 0.8566, got, 1e-4)
}

// TestEstimateError_ZeroAtKnot: the node product vanishes on a knot.
func TestEstimateError_ZeroAtKnot(t *testing.T) {
	got, err := lagrange.EstimateError(func(float64) float64 { return 10 }, []float64{1, 2, 3}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestEstimateError_NonNegative sweeps points for a non-negative bound.
func TestEstimateError_NonNegative(t *testing.T) {
	x := []float64{-1, 0.5, 2, 3}
	bound := func(v float64) float64 { return v * v }
	for p := -3.0; p <= 5; p += 0.37 {
		got, err := lagrange.EstimateError(bound, x, p, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.0, "p=%v", p)
	}
}

// TestEstimateError_NegativeBoundClampsToZero: M starts at 0.
func TestEstimateError_NegativeBoundClampsToZero(t *testing.T) {
	got, err := lagrange.EstimateError(func(float64) float64 { return -5 }, []float64{1, 2}, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestEstimateError_ProbeGrid shows the opt-in grid catching an interior
// maximum that the knots alone miss.
func TestEstimateError_ProbeGrid(t *testing.T) {
	x := []float64{0, 2}
	// Peak of 1 at v=1, zero on both knots.
	bound := func(v float64) float64 { return math.Max(0, 1-math.Abs(v-1)) }

	knotsOnly, err := lagrange.EstimateError(bound, x, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, knotsOnly)

	probed, err := lagrange.EstimateError(bound, x, 1, 1, lagrange.WithProbeGrid(3))
	require.NoError(t, err)
	// Probes at 0, 1, 2 → M = 1; product = 1·1; 2! = 2.
	assert.InDelta(t, 0.5, probed, 1e-15)

	reset, err := lagrange.EstimateError(bound, x, 1, 1, lagrange.WithProbeGrid(3), lagrange.WithProbeGrid(0))
	require.NoError(t, err)
	assert.Equal(t, knotsOnly, reset, "later option wins")
}

func TestEstimateError_Errors(t *testing.T) {
	one := func(float64) float64 { return 1 }

	_, err := lagrange.EstimateError(nil, []float64{1}, 0, 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument, "nil bound")

	_, err = lagrange.EstimateError(one, nil, 0, 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument, "no knots")

	_, err = lagrange.EstimateError(one, []float64{1, 2}, 0, -1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument, "negative order")

	_, err = lagrange.EstimateError(one, []float64{1, 2}, math.Inf(1), 1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument, "infinite point")

	_, err = lagrange.EstimateError(one, []float64{1, 2}, 0, 170)
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow, "171! overflows")
}

func TestWithProbeGrid_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { lagrange.WithProbeGrid(-1) })
}

func TestFactorial(t *testing.T) {
	cases := map[int]float64{0: 1, 1: 1, 2: 2, 3: 6, 5: 120, 10: 3628800}
	for n, want := range cases {
		got, err := lagrange.Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%d!", n)
	}

	big, err := lagrange.Factorial(170)
	require.NoError(t, err)
	assert.False(t, math.IsInf(big, 0))

	_, err = lagrange.Factorial(171)
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)

	_, err = lagrange.Factorial(-1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
