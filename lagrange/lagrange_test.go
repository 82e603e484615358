package lagrange_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvinterp/core"
	"github.com/katalvlaran/lvinterp/lagrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// lnPow is f(x) = (ln x)^(5/3), the function tabulated in the log-power fixture.
func lnPow(x float64) float64 { return math.Pow(math.Log(x), 5.0/3) }

// TestEvaluate_LogPower checks the three-knot (ln x)^(5/3) fixture at 6.5.
func TestEvaluate_LogPower(t *testing.T) {
	x := []float64{2, 6, 10}
	y := []float64{lnPow(2), lnPow(6), lnPow(10)}

	v, err := lagrange.Evaluate(x, y, 6.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.855, v, 0.01)
}

// TestEvaluate_KnotExactness verifies P(x[k]) == y[k] for every knot,
// including unsorted knot orders.
func TestEvaluate_KnotExactness(t *testing.T) {
	x := []float64{0.3, -1.2, 4, 2.5, 7.75}
	y := []float64{1, -3.5, 0.25, 8, -2}
	for k := range x {
		v, err := lagrange.Evaluate(x, y, x[k])
		require.NoError(t, err)
		assert.Equal(t, y[k], v, "knot %d", k)
	}
}

// TestEvaluate_SingleSample: one sample gives the constant polynomial.
func TestEvaluate_SingleSample(t *testing.T) {
	v, err := lagrange.Evaluate([]float64{3}, []float64{42}, -100)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

// TestEvaluate_PolynomialReproduction samples a cubic at four knots and checks
// the interpolant reproduces it away from the knots.
func TestEvaluate_PolynomialReproduction(t *testing.T) {
	p := func(t float64) float64 { return 2*t*t*t - t + 5 }
	x := []float64{-2, 0, 1, 3}
	y := make([]float64, len(x))
	for i := range x {
		y[i] = p(x[i])
	}

	for _, q := range []float64{-3.5, -0.25, 0.5, 2.2, 10} {
		v, err := lagrange.Evaluate(x, y, q)
		require.NoError(t, err)
		assert.InDelta(t, p(q), v, 1e-9*math.Max(1, math.Abs(p(q))), "t=%v", q)
	}
}

// TestEvaluate_MatchesVandermonde cross-checks Evaluate against a dense
// Vandermonde solve for random distinct knots.
func TestEvaluate_MatchesVandermonde(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 6

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) + 0.5*rng.Float64()
		y[i] = rng.NormFloat64()
	}

	v := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		pow := 1.0
		for j := 0; j < n; j++ {
			v.Set(i, j, pow)
			pow *= x[i]
		}
	}
	var c mat.VecDense
	require.NoError(t, c.SolveVec(v, mat.NewVecDense(n, y)))

	for _, q := range []float64{0.1, 1.7, 2.9, 4.4} {
		want, pow := 0.0, 1.0
		for j := 0; j < n; j++ {
			want += c.AtVec(j) * pow
			pow *= q
		}
		got, err := lagrange.Evaluate(x, y, q)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-8, "t=%v", q)
	}
}

// TestEvaluate_Errors covers the error taxonomy.
func TestEvaluate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		x, y  []float64
		point float64
		want  error
	}{
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 1.5, core.ErrInvalidArgument},
		{"empty", []float64{}, []float64{}, 0, core.ErrInvalidArgument},
		{"duplicate knot", []float64{1, 1, 2}, []float64{1, 2, 3}, 1.5, core.ErrDegenerateInput},
		{"duplicate non-adjacent", []float64{1, 2, 1}, []float64{1, 2, 3}, 1.5, core.ErrDegenerateInput},
		{"nan point", []float64{1, 2}, []float64{1, 2}, math.NaN(), core.ErrInvalidArgument},
		{"inf value", []float64{1, 2}, []float64{1, math.Inf(1)}, 1.5, core.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lagrange.Evaluate(tc.x, tc.y, tc.point)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
