// SPDX-License-Identifier: MIT
// Package: lvinterp/lagrange
//
// polynomial.go: a reusable Lagrange interpolant.

package lagrange

import (
	"github.com/katalvlaran/lvinterp/core"
)

const methodNew = "New"

var _ core.Interpolator = (*Polynomial)(nil)

// Polynomial is the Lagrange interpolant of a fixed set of samples. New
// validates the samples once and caches the basis denominators
// w[i] = Π_{j≠i} (x[i] - x[j]); every Eval afterwards only forms the
// numerators. A Polynomial is immutable and safe for concurrent use.
type Polynomial struct {
	x, y []float64
	w    []float64
}

// New validates x and y and returns their interpolating polynomial.
// Knots may be in any order but must be pairwise distinct.
//
// Errors:
//   - core.ErrInvalidArgument: len(x) != len(y), len(x) < 1, NaN/Inf input.
//   - core.ErrDegenerateInput: duplicate knots.
//
// Complexity: O(n²) time, O(n) space.
func New(x, y []float64) (*Polynomial, error) {
	if err := validateNodes(x, y); err != nil {
		return nil, core.Errorf(methodNew, err, "")
	}
	if err := core.ValidateDistinct(x); err != nil {
		return nil, core.Errorf(methodNew, err, "")
	}

	n := len(x)
	p := &Polynomial{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		w: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		w := 1.0
		for j := 0; j < n; j++ {
			if i != j {
				w *= p.x[i] - p.x[j]
			}
		}
		p.w[i] = w
	}

	return p, nil
}

// Degree returns the maximal degree n-1 of the polynomial.
func (p *Polynomial) Degree() int { return len(p.x) - 1 }

// Knots returns a copy of the interpolation knots in input order.
func (p *Polynomial) Knots() []float64 { return append([]float64(nil), p.x...) }

// Eval evaluates the polynomial at t. Polynomials are defined everywhere, so
// the only failure is a non-finite t.
//
// Complexity: O(n²).
func (p *Polynomial) Eval(t float64) (float64, error) {
	if err := core.ValidateFinite("point", []float64{t}); err != nil {
		return 0, core.Errorf("Polynomial.Eval", err, "")
	}

	return p.eval(t), nil
}

// EvalAll evaluates the polynomial at every xs[i]. If out is supplied and
// out[0] has room for len(xs) values, results are written there.
func (p *Polynomial) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if err := core.ValidateFinite("xs", xs); err != nil {
		return nil, core.Errorf("Polynomial.EvalAll", err, "")
	}

	res := outBuffer(len(xs), out)
	for i, t := range xs {
		res[i] = p.eval(t)
	}

	return res, nil
}

// eval computes Σ y[i]·Π_{j≠i}(t-x[j]) / w[i]. The numerator product is
// accumulated in the same order as w[i], so t == x[k] yields y[k] exactly.
func (p *Polynomial) eval(t float64) float64 {
	var result float64
	for i := range p.x {
		num := 1.0
		for j := range p.x {
			if i != j {
				num *= t - p.x[j]
			}
		}
		result += p.y[i] * (num / p.w[i])
	}

	return result
}

// outBuffer returns out[0][:n] when it is large enough, else a fresh slice.
func outBuffer(n int, out [][]float64) []float64 {
	if len(out) > 0 && len(out[0]) >= n {
		return out[0][:n]
	}

	return make([]float64, n)
}
