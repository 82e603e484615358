// SPDX-License-Identifier: MIT
// Package: lvinterp/spline
//
// build.go: natural cubic spline construction.

package spline

import (
	"github.com/katalvlaran/lvinterp/core"
)

const methodBuildNatural = "BuildNatural"

// BuildNatural fits the natural cubic spline through (x[i], y[i]).
//
// Algorithm (tridiagonal elimination specialized to the natural boundary):
//  1. Steps h[i] = x[i+1] - x[i], i = 0..n-2.
//  2. Right-hand sides for interior knots i = 1..n-2:
//     alpha[i] = 3/h[i]·(y[i+1]-y[i]) - 3/h[i-1]·(y[i]-y[i-1]).
//  3. Forward elimination from l[0]=1, mu[0]=0, z[0]=0:
//     l[i]  = 2·(x[i+1]-x[i-1]) - h[i-1]·mu[i-1]
//     mu[i] = h[i]/l[i]
//     z[i]  = (alpha[i] - h[i-1]·z[i-1]) / l[i]
//     and closing with l[n-1]=1, z[n-1]=0, c[n-1]=0.
//  4. Back substitution j = n-2..0:
//     c[j] = z[j] - mu[j]·c[j+1]
//     b[j] = (y[j+1]-y[j])/h[j] - h[j]·(c[j+1]+2·c[j])/3
//     d[j] = (c[j+1]-c[j]) / (3·h[j])
//     a[j] = y[j]
//
// The system is strictly diagonally dominant when every step is positive, so
// no pivoting is needed and the solution is unique.
//
// Guarantees:
//   - c[0] == 0 and the implicit c[n-1] == 0 exactly (natural boundary).
//   - S_i(x[i+1]) == y[i+1] up to rounding (continuity).
//   - S_i'(x[i+1]) == S_{i+1}'(x[i+1]) up to rounding (C¹).
//
// Errors:
//   - core.ErrInvalidArgument: len(x) != len(y), n < 2, NaN/Inf input.
//   - core.ErrDegenerateInput: some step x[i+1]-x[i] ≤ 0.
//
// Complexity:
//   - Time O(n), Space O(n). Working buffers live only for this call.
func BuildNatural(x, y []float64) (*Model, error) {
	if err := core.ValidateSamples(x, y, core.MinSamples); err != nil {
		return nil, core.Errorf(methodBuildNatural, err, "")
	}

	n := len(x)
	last := n - 1

	var (
		h     = make([]float64, last)
		alpha = make([]float64, n)
		l     = make([]float64, n)
		mu    = make([]float64, n)
		z     = make([]float64, n)
		c     = make([]float64, n)
	)

	for i := 0; i < last; i++ {
		h[i] = x[i+1] - x[i]
	}

	for i := 1; i < last; i++ {
		alpha[i] = 3/h[i]*(y[i+1]-y[i]) - 3/h[i-1]*(y[i]-y[i-1])
	}

	// Natural boundary at x[0].
	l[0], mu[0], z[0] = 1, 0, 0
	for i := 1; i < last; i++ {
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	// Natural boundary at x[n-1].
	l[last], z[last], c[last] = 1, 0, 0

	m := &Model{
		x:      append([]float64(nil), x...),
		coeffs: make([]Coeff, last),
	}
	for j := last - 1; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		m.coeffs[j] = Coeff{
			A: y[j],
			B: (y[j+1]-y[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3,
			C: c[j],
			D: (c[j+1] - c[j]) / (3 * h[j]),
		}
	}

	return m, nil
}
