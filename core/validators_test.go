package core_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvinterp/core"
	"github.com/stretchr/testify/assert"
)

func TestValidateSameLen(t *testing.T) {
	assert.NoError(t, core.ValidateSameLen([]float64{1}, []float64{2}))
	assert.ErrorIs(t, core.ValidateSameLen([]float64{1, 2}, []float64{1, 2, 3}), core.ErrInvalidArgument)
}

func TestValidateMinLen(t *testing.T) {
	assert.NoError(t, core.ValidateMinLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, core.ValidateMinLen([]float64{1}, 2), core.ErrInvalidArgument)
	assert.ErrorIs(t, core.ValidateMinLen(nil, 1), core.ErrInvalidArgument)
}

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, core.ValidateFinite("x", []float64{0, -1, 1e300}))
	assert.ErrorIs(t, core.ValidateFinite("x", []float64{0, math.NaN()}), core.ErrInvalidArgument)
	assert.ErrorIs(t, core.ValidateFinite("y", []float64{math.Inf(-1)}), core.ErrInvalidArgument)
}

// TestValidateDistinct accepts unordered distinct knots and rejects any
// repeated pair, including non-adjacent ones.
func TestValidateDistinct(t *testing.T) {
	assert.NoError(t, core.ValidateDistinct([]float64{3, 1, 2}))
	assert.ErrorIs(t, core.ValidateDistinct([]float64{1, 1, 2}), core.ErrDegenerateInput)
	assert.ErrorIs(t, core.ValidateDistinct([]float64{1, 2, 1}), core.ErrDegenerateInput)
}

func TestValidateIncreasing(t *testing.T) {
	assert.NoError(t, core.ValidateIncreasing([]float64{1, 2, 3}))
	assert.NoError(t, core.ValidateIncreasing([]float64{5}))
	assert.ErrorIs(t, core.ValidateIncreasing([]float64{1, 2, 2}), core.ErrDegenerateInput)
	assert.ErrorIs(t, core.ValidateIncreasing([]float64{1, 0}), core.ErrDegenerateInput)
}

// TestValidateSamples_Priority checks that a length mismatch wins over a
// degenerate ordering when both are present.
func TestValidateSamples_Priority(t *testing.T) {
	err := core.ValidateSamples([]float64{2, 1}, []float64{1}, 2)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.False(t, errors.Is(err, core.ErrDegenerateInput))
}

// TestErrorf keeps the sentinel reachable and prefixes the method.
func TestErrorf(t *testing.T) {
	err := core.Errorf("Eval", core.ErrOutOfDomain, "point %v", 9.5)
	assert.ErrorIs(t, err, core.ErrOutOfDomain)
	assert.Equal(t, fmt.Sprintf("Eval: point 9.5: %v", core.ErrOutOfDomain), err.Error())

	bare := core.Errorf("Eval", core.ErrOutOfDomain, "")
	assert.Equal(t, "Eval: lvinterp: point out of domain", bare.Error())
}
