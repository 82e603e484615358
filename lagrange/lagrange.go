// SPDX-License-Identifier: MIT
// Package: lvinterp/lagrange
//
// lagrange.go: point-wise evaluation of the Lagrange interpolation polynomial.

package lagrange

import (
	"github.com/katalvlaran/lvinterp/core"
)

// methodEvaluate is the error context prefix for Evaluate.
const methodEvaluate = "Evaluate"

// Evaluate returns the value at point of the unique polynomial of degree
// ≤ n-1 passing through (x[i], y[i]).
//
// Algorithm:
//  1. For each sample i, start the basis term at y[i].
//  2. Multiply by (point - x[j]) / (x[i] - x[j]) for every j ≠ i.
//  3. Sum the terms.
//
// When point == x[k] every term but the k-th carries the factor
// (point - x[k]) = 0, and the k-th term is y[k]·1, so the knot value is
// reproduced exactly.
//
// Knots need not be sorted, but they must be pairwise distinct.
//
// Errors:
//   - core.ErrInvalidArgument: len(x) != len(y), len(x) < 1, NaN/Inf input.
//   - core.ErrDegenerateInput: x[i] == x[j] for some i ≠ j.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Evaluate(x, y []float64, point float64) (float64, error) {
	if err := validateNodes(x, y); err != nil {
		return 0, core.Errorf(methodEvaluate, err, "")
	}
	if err := core.ValidateFinite("point", []float64{point}); err != nil {
		return 0, core.Errorf(methodEvaluate, err, "")
	}

	var (
		n      = len(x)
		result float64
		term   float64
		denom  float64
	)
	for i := 0; i < n; i++ {
		term = y[i]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			denom = x[i] - x[j]
			if denom == 0 {
				return 0, core.Errorf(methodEvaluate, core.ErrDegenerateInput, "x[%d] == x[%d] == %v", i, j, x[i])
			}
			term *= (point - x[j]) / denom
		}
		result += term
	}

	return result, nil
}

// validateNodes runs the checks shared by Evaluate and New:
// SameLen → MinLen(1) → Finite(x) → Finite(y).
func validateNodes(x, y []float64) error {
	if err := core.ValidateSameLen(x, y); err != nil {
		return err
	}
	if err := core.ValidateMinLen(x, 1); err != nil {
		return err
	}
	if err := core.ValidateFinite("x", x); err != nil {
		return err
	}

	return core.ValidateFinite("y", y)
}
