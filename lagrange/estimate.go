// SPDX-License-Identifier: MIT
// Package: lvinterp/lagrange
//
// estimate.go: a-priori bound on the Lagrange interpolation error.
//
// The remainder of the degree-`order` interpolant is
//
//	R(t) = f⁽ᵒʳᵈᵉʳ⁺¹⁾(ξ) / (order+1)! · Π |t - x[i]|
//
// for some ξ in the interpolation interval. EstimateError replaces
// max |f⁽ᵒʳᵈᵉʳ⁺¹⁾| by the largest value of the supplied bound function
// observed on the knots only. That is an approximation, not a rigorous
// bound: the true maximum may lie between knots. WithProbeGrid adds interior
// probe points when a tighter estimate of the maximum is wanted; without it
// the knots-only behavior is unchanged.

package lagrange

import (
	"math"

	"github.com/katalvlaran/lvinterp/builder"
	"github.com/katalvlaran/lvinterp/core"
)

const (
	methodEstimateError = "EstimateError"
	methodFactorial     = "Factorial"
)

// EstimateError returns M · Π|point - x[i]| / (order+1)!, where M is the
// maximum of bound over the probe points (the knots, plus the optional probe
// grid). M starts at 0, so a bound that is negative everywhere yields 0.
//
// The result is ≥ 0 whenever bound is non-negative on the probe points.
//
// Errors:
//   - core.ErrInvalidArgument: bound == nil, len(x) == 0, order < 0, NaN/Inf input.
//   - core.ErrArithmeticOverflow: (order+1)! exceeds float64 range.
//
// Complexity:
//   - Time O(n + k) calls to bound, where k is the probe grid size.
func EstimateError(bound core.Func, x []float64, point float64, order int, opts ...Option) (float64, error) {
	if bound == nil {
		return 0, core.Errorf(methodEstimateError, core.ErrInvalidArgument, "nil derivative bound")
	}
	if err := core.ValidateMinLen(x, 1); err != nil {
		return 0, core.Errorf(methodEstimateError, err, "")
	}
	if err := core.ValidateFinite("x", x); err != nil {
		return 0, core.Errorf(methodEstimateError, err, "")
	}
	if err := core.ValidateFinite("point", []float64{point}); err != nil {
		return 0, core.Errorf(methodEstimateError, err, "")
	}
	if order < 0 {
		return 0, core.Errorf(methodEstimateError, core.ErrInvalidArgument, "order %d < 0", order)
	}

	cfg := newConfig(opts...)

	fact, err := Factorial(order + 1)
	if err != nil {
		return 0, core.Errorf(methodEstimateError, err, "")
	}

	m := 0.0
	for _, xi := range x {
		m = math.Max(m, bound(xi))
	}
	if cfg.probeGrid > 0 {
		lo, hi := span(x)
		for _, p := range builder.Linspace(lo, hi, cfg.probeGrid) {
			m = math.Max(m, bound(p))
		}
	}

	product := 1.0
	for _, xi := range x {
		product *= math.Abs(point - xi)
	}

	return m * product / fact, nil
}

// Factorial returns n! = 1·2·⋯·n as a float64 (0! = 1).
//
// Errors:
//   - core.ErrInvalidArgument: n < 0.
//   - core.ErrArithmeticOverflow: n! overflows float64 (n ≥ 171).
//
// Complexity: O(n).
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, core.Errorf(methodFactorial, core.ErrInvalidArgument, "n=%d", n)
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
		if math.IsInf(result, 1) {
			return 0, core.Errorf(methodFactorial, core.ErrArithmeticOverflow, "%d!", n)
		}
	}

	return result, nil
}

// span returns min(x) and max(x); x is not required to be sorted here.
func span(x []float64) (lo, hi float64) {
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}
