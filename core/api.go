// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: capability types shared by the algorithm packages.
// Policy:
//   - No algorithms or hidden state here.
//   - Every implementation documents its own domain and error behavior.

package core

// Func is a real function of one real variable. It is used for derivative
// bounds handed to the error estimator and for sample generators.
type Func func(float64) float64

// Interpolator is a 1-D interpolant built once from samples and evaluated
// many times. Implementations are immutable after construction, so a single
// value may be shared by any number of goroutines.
type Interpolator interface {
	// Eval evaluates the interpolant at x.
	Eval(x float64) (float64, error)

	// EvalAll evaluates a sequence of points. An optional output slice with
	// len(out[0]) >= len(xs) may be supplied to avoid an allocation.
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
}
