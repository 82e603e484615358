package spline_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvinterp/core"
	"github.com/katalvlaran/lvinterp/spline"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildNatural
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	y = x² sampled at x = 1, 2, 3, 4; build the natural spline and print the
//	per-interval coefficients.
//
// Complexity: O(n) time, O(n) memory
func ExampleBuildNatural() {
	m, err := spline.BuildNatural([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < m.Len(); i++ {
		lo, hi, c, _ := m.Segment(i)
		fmt.Printf("[%g, %g] a=%.1f b=%.1f c=%.1f d=%.1f\n", lo, hi, c.A, c.B, c.C, c.D)
	}
	// Output:
	// [1, 2] a=1.0 b=2.6 c=0.0 d=0.4
	// [2, 3] a=4.0 b=3.8 c=1.2 d=0.0
	// [3, 4] a=9.0 b=6.2 c=1.2 d=-0.4
}

// ExampleEval evaluates the squares spline inside and outside its domain.
func ExampleEval() {
	m, _ := spline.BuildNatural([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})

	v, _ := spline.Eval(m, 2.5)
	_, err := spline.Eval(m, 4.5)
	fmt.Printf("S(2.5)=%.4f out-of-domain=%v\n", v, errors.Is(err, core.ErrOutOfDomain))
	// Output:
	// S(2.5)=6.2000 out-of-domain=true
}
