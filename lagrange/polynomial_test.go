package lagrange_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvinterp/core"
	"github.com/katalvlaran/lvinterp/lagrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPolynomial_MatchesEvaluate compares the cached-denominator form with the
// stateless Evaluate.
func TestPolynomial_MatchesEvaluate(t *testing.T) {
	x := []float64{2, 6, 10}
	y := []float64{lnPow(2), lnPow(6), lnPow(10)}

	p, err := lagrange.New(x, y)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, x, p.Knots())

	for _, q := range []float64{2, 3.3, 6.5, 9.9, 10, 12} {
		want, err := lagrange.Evaluate(x, y, q)
		require.NoError(t, err)
		got, err := p.Eval(q)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "t=%v", q)
	}

	// Knots are reproduced exactly.
	for k := range x {
		got, err := p.Eval(x[k])
		require.NoError(t, err)
		assert.Equal(t, y[k], got)
	}
}

// TestPolynomial_IsolatedFromCaller ensures New copies its input.
func TestPolynomial_IsolatedFromCaller(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	p, err := lagrange.New(x, y)
	require.NoError(t, err)

	x[1], y[1] = 5, 5
	got, err := p.Eval(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestPolynomial_EvalAll(t *testing.T) {
	p, err := lagrange.New([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)

	got, err := p.EvalAll([]float64{0.5, 1.5, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 2.25, 9}, got, 1e-12)

	buf := make([]float64, 8)
	got, err = p.EvalAll([]float64{1, 2}, buf)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Same(t, &buf[0], &got[0], "supplied buffer is reused")
}

func TestPolynomial_Errors(t *testing.T) {
	_, err := lagrange.New([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = lagrange.New([]float64{1, 2, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, core.ErrDegenerateInput)

	p, err := lagrange.New([]float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	_, err = p.EvalAll([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestPolynomial_Concurrent evaluates a single Polynomial from many goroutines.
func TestPolynomial_Concurrent(t *testing.T) {
	p, err := lagrange.New([]float64{0, 1, 2, 3}, []float64{1, 2, 5, 10})
	require.NoError(t, err)

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			q := float64(id) / workers * 3
			got, err := p.Eval(q)
			assert.NoError(t, err)
			assert.InDelta(t, q*q+1, got, 1e-9)
		}(i)
	}
	wg.Wait()
}
