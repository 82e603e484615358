// SPDX-License-Identifier: MIT
// Package: lvinterp/core
//
// validators.go: canonical guard checks for sample arrays.
//
// Purpose:
//   - Keep the algorithm files minimal by delegating length/finite/order
//     checks here.
//   - Return plain sentinel errors wrapped with a validator tag so the call
//     site can add its own method context on top.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - ValidateDistinct is O(n²); it is used only where the algorithm itself is
//     already O(n²) (Lagrange).

package core

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}

// ValidateSameLen ensures x and y describe the same number of samples.
//
// Errors: ErrInvalidArgument when len(x) != len(y).
// Complexity: O(1).
func ValidateSameLen(x, y []float64) error {
	if len(x) != len(y) {
		return validatorErrorf("ValidateSameLen", ErrInvalidArgument, "len(x)=%d, len(y)=%d", len(x), len(y))
	}

	return nil
}

// ValidateMinLen ensures x holds at least min samples.
//
// Errors: ErrInvalidArgument when len(x) < min.
// Complexity: O(1).
func ValidateMinLen(x []float64, min int) error {
	if len(x) < min {
		return validatorErrorf("ValidateMinLen", ErrInvalidArgument, "need at least %d samples, got %d", min, len(x))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
//
// Errors: ErrInvalidArgument naming the first offending index.
// Complexity: O(n).
func ValidateFinite(name string, v []float64) error {
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return validatorErrorf("ValidateFinite", ErrInvalidArgument, "%s[%d]=%v", name, i, f)
		}
	}

	return nil
}

// ValidateDistinct ensures all knots are pairwise distinct. Order is not
// checked.
//
// Errors: ErrDegenerateInput naming the first duplicate pair.
// Complexity: O(n²) time, O(1) space.
func ValidateDistinct(x []float64) error {
	for i := 0; i < len(x); i++ {
		for j := i + 1; j < len(x); j++ {
			if x[i] == x[j] {
				return validatorErrorf("ValidateDistinct", ErrDegenerateInput, "x[%d]=x[%d]=%v", i, j, x[i])
			}
		}
	}

	return nil
}

// ValidateIncreasing ensures x is strictly increasing (every step > 0).
// Violations are rejected, never sorted.
//
// Errors: ErrDegenerateInput naming the first non-positive step.
// Complexity: O(n).
func ValidateIncreasing(x []float64) error {
	for i := 0; i+1 < len(x); i++ {
		if !(x[i+1] > x[i]) {
			return validatorErrorf("ValidateIncreasing", ErrDegenerateInput,
				"step x[%d]-x[%d]=%v is not positive", i+1, i, x[i+1]-x[i])
		}
	}

	return nil
}

// ValidateSamples runs the full sample-set sequence in priority order:
// SameLen → MinLen → Finite(x) → Finite(y) → Increasing.
func ValidateSamples(x, y []float64, min int) error {
	if err := ValidateSameLen(x, y); err != nil {
		return err
	}
	if err := ValidateMinLen(x, min); err != nil {
		return err
	}
	if err := ValidateFinite("x", x); err != nil {
		return err
	}
	if err := ValidateFinite("y", y); err != nil {
		return err
	}

	return ValidateIncreasing(x)
}
