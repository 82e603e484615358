// SPDX-License-Identifier: MIT
// Package: lvinterp/builder
//
// impl_uniform.go - samples of a function on an evenly spaced grid.
//
// Contract:
//   - Uniform(f, a, b, n, opts...) returns n samples with x[0]=a, x[n-1]=b.
//   - O(n) time, O(n) memory. No panics. No global state.

package builder

import (
	"github.com/katalvlaran/lvinterp/core"
)

// Uniform samples f at n evenly spaced knots spanning [a, b].
// Model:
//   - xᵢ = a + (b − a)·i/(n−1),  x_{n−1} = b exactly
//   - yᵢ = f(xᵢ) + trend·xᵢ + noise
//
// Errors:
//   - core.ErrInvalidArgument: f == nil, n < MinNodes, [a, b] empty or not finite,
//     or f produced NaN/Inf.
//   - core.ErrDegenerateInput: the interval is too narrow for n distinct float64 knots.
func Uniform(f core.Func, a, b float64, n int, opts ...BuilderOption) (*core.SampleSet, error) {
	if err := validateFunc(MethodUniform, f); err != nil {
		return nil, err
	}
	if err := validateMin(MethodUniform, n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateInterval(MethodUniform, a, b); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)

	return sample(MethodUniform, f, Linspace(a, b, n), cfg)
}
