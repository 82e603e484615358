// SPDX-License-Identifier: MIT
// Package: lvinterp/spline
//
// types.go: the immutable natural cubic spline model.

package spline

import (
	"github.com/katalvlaran/lvinterp/core"
)

var _ core.Interpolator = (*Model)(nil)

// Coeff holds the cubic on one interval [x[i], x[i+1]]:
//
//	S_i(t) = A + B·dx + C·dx² + D·dx³,  dx = t - x[i].
//
// A is the knot value y[i], B the first derivative at x[i], C half the second
// derivative at x[i], D a sixth of the (constant) third derivative.
type Coeff struct {
	A, B, C, D float64
}

// Model is a natural cubic spline built by BuildNatural.
//
// It keeps the knots x[0..n-1] and n-1 per-interval coefficients. The second
// derivative proxy at the last knot is fixed at 0 by the natural boundary and
// is not stored. A Model is never mutated after construction, so it may be
// evaluated concurrently without synchronization.
type Model struct {
	x      []float64
	coeffs []Coeff
}

// Len returns the number of intervals, n-1.
func (m *Model) Len() int { return len(m.coeffs) }

// Knots returns a copy of the knot sequence.
func (m *Model) Knots() []float64 { return append([]float64(nil), m.x...) }

// Coeffs returns a copy of all per-interval coefficients, interval i at index i.
func (m *Model) Coeffs() []Coeff { return append([]Coeff(nil), m.coeffs...) }

// Segment returns the interval [lo, hi] and coefficients of interval i.
//
// Errors: core.ErrInvalidArgument if i is not in [0, Len()).
func (m *Model) Segment(i int) (lo, hi float64, c Coeff, err error) {
	if i < 0 || i >= len(m.coeffs) {
		return 0, 0, Coeff{}, core.Errorf("Segment", core.ErrInvalidArgument, "interval %d not in [0, %d)", i, len(m.coeffs))
	}

	return m.x[i], m.x[i+1], m.coeffs[i], nil
}

// Domain returns [x[0], x[n-1]].
func (m *Model) Domain() (lo, hi float64) { return m.x[0], m.x[len(m.x)-1] }
