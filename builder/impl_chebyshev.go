// SPDX-License-Identifier: MIT
// Package: lvinterp/builder
//
// impl_chebyshev.go - samples of a function at Chebyshev nodes.
//
// Purpose:
//   - Chebyshev nodes cluster toward the interval ends, which keeps high
//     degree Lagrange interpolants away from Runge oscillation.
//
// Contract:
//   - Chebyshev(f, a, b, n, opts...) returns n samples, knots strictly inside
//     (a, b), sorted increasing.
//   - O(n) time, O(n) memory. No panics. No global state.

package builder

import (
	"math"

	"github.com/katalvlaran/lvinterp/core"
)

// Chebyshev samples f at the n Chebyshev nodes of the first kind mapped to
// [a, b].
// Model:
//   - tₖ = cos((2k+1)π / 2n),  k = 0..n−1  (descending in k)
//   - xₖ = (a+b)/2 + (b−a)/2 · tₖ, emitted in increasing order
//   - y  = f(x) + trend·x + noise
//
// Errors: as for Uniform.
func Chebyshev(f core.Func, a, b float64, n int, opts ...BuilderOption) (*core.SampleSet, error) {
	if err := validateFunc(MethodChebyshev, f); err != nil {
		return nil, err
	}
	if err := validateMin(MethodChebyshev, n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateInterval(MethodChebyshev, a, b); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)

	mid, half := (a+b)/2, (b-a)/2
	x := make([]float64, n)
	for k := 0; k < n; k++ {
		// Fill from the right so that x is increasing.
		t := math.Cos(float64(2*k+1) * math.Pi / float64(2*n))
		x[n-1-k] = mid + half*t
	}

	return sample(MethodChebyshev, f, x, cfg)
}
