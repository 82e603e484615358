// SPDX-License-Identifier: MIT
// Package: lvinterp/spline
//
// eval.go: piecewise evaluation of a built Model.

package spline

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvinterp/core"
)

// MaxDiffOrder is the highest derivative order with a non-zero cubic term.
const MaxDiffOrder = 3

// Eval evaluates model at point. It is the free-function form of Model.Eval.
//
// Errors:
//   - core.ErrInvalidArgument: model == nil or point is NaN.
//   - core.ErrOutOfDomain: point outside [x[0], x[n-1]].
func Eval(model *Model, point float64) (float64, error) {
	if model == nil {
		return 0, core.Errorf("Eval", core.ErrInvalidArgument, "nil model")
	}

	return model.Eval(point)
}

// Eval returns S(point) = a[i] + b[i]·dx + c[i]·dx² + d[i]·dx³ where i is the
// interval containing point and dx = point - x[i]. The last knot belongs to
// the final interval; an interior knot x[k] is evaluated on interval k.
//
// Errors:
//   - core.ErrInvalidArgument: point is NaN.
//   - core.ErrOutOfDomain: point outside [x[0], x[n-1]]. No extrapolation.
//
// Complexity: O(log n).
func (m *Model) Eval(point float64) (float64, error) {
	i, err := m.locate("Model.Eval", point)
	if err != nil {
		return 0, err
	}

	return m.coeffs[i].at(point - m.x[i]), nil
}

// EvalAll evaluates every point in xs. If out is supplied and out[0] has room
// for len(xs) values, results are written there. The first failing point
// aborts the batch.
func (m *Model) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	var res []float64
	if len(out) > 0 && len(out[0]) >= len(xs) {
		res = out[0][:len(xs)]
	} else {
		res = make([]float64, len(xs))
	}

	for k, p := range xs {
		i, err := m.locate("Model.EvalAll", p)
		if err != nil {
			return nil, err
		}
		res[k] = m.coeffs[i].at(p - m.x[i])
	}

	return res, nil
}

// Diff returns the order-th derivative of the spline at point. Order 0 is
// Eval; orders above MaxDiffOrder are identically 0.
//
// Errors:
//   - core.ErrInvalidArgument: order < 0 or point is NaN.
//   - core.ErrOutOfDomain: point outside [x[0], x[n-1]].
func (m *Model) Diff(point float64, order int) (float64, error) {
	if order < 0 {
		return 0, core.Errorf("Model.Diff", core.ErrInvalidArgument, "order %d < 0", order)
	}
	i, err := m.locate("Model.Diff", point)
	if err != nil {
		return 0, err
	}

	c, dx := m.coeffs[i], point-m.x[i]
	switch order {
	case 0:
		return c.at(dx), nil
	case 1:
		return c.B + 2*c.C*dx + 3*c.D*dx*dx, nil
	case 2:
		return 2*c.C + 6*c.D*dx, nil
	case 3:
		return 6 * c.D, nil
	default:
		return 0, nil
	}
}

// locate returns the index of the interval containing p.
func (m *Model) locate(method string, p float64) (int, error) {
	if math.IsNaN(p) {
		return 0, core.Errorf(method, core.ErrInvalidArgument, "point is NaN")
	}
	lo, hi := m.Domain()
	if p < lo || p > hi {
		return 0, core.Errorf(method, core.ErrOutOfDomain, "point %v not in [%v, %v]", p, lo, hi)
	}

	i, found := slices.BinarySearch(m.x, p)
	if !found {
		i--
	}
	if i > len(m.coeffs)-1 {
		i = len(m.coeffs) - 1
	}

	return i, nil
}

// at evaluates the cubic at offset dx from the left knot.
func (c Coeff) at(dx float64) float64 {
	return c.A + c.B*dx + c.C*dx*dx + c.D*dx*dx*dx
}
