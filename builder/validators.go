// Package builder provides validation helpers to enforce parameter contracts
// in the sample-set generators.
//
// Each function returns a formatted error via builderErrorf when its
// precondition is violated.
package builder

import (
	"math"

	"github.com/katalvlaran/lvinterp/core"
)

// validateMin ensures that the node count 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ..." otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, core.ErrInvalidArgument, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateInterval enforces a finite, non-empty interval a < b.
//
// Complexity: O(1) time and space.
func validateInterval(method string, a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return builderErrorf(method, core.ErrInvalidArgument, "interval [%v, %v] must be finite", a, b)
	}
	if !(a < b) {
		return builderErrorf(method, core.ErrInvalidArgument, "interval [%v, %v] is empty", a, b)
	}

	return nil
}

// validateFunc rejects a nil sampled function.
func validateFunc(method string, f core.Func) error {
	if f == nil {
		return builderErrorf(method, core.ErrInvalidArgument, "nil function")
	}

	return nil
}
