// Package lvinterp is a small numeric toolkit for one-dimensional
// interpolation of sampled data.
//
// 🚀 What is inside?
//
//	• Lagrange polynomial through n knots, evaluated in O(n²)
//	• An a-priori error bound M·Π|p−xᵢ| / (order+1)!
//	• Natural cubic splines (second derivative zero at both ends)
//	• Batch evaluation and spline derivatives up to third order
//	• Uniform and Chebyshev sample generators for experiments
//
// ✨ Why lvinterp?
//
//   - Explicit errors – every failure wraps a core sentinel for errors.Is
//   - Immutable models – a built spline is safe for concurrent readers
//   - Pure Go core – the algorithm packages import only the standard library
//
// Layout:
//
//	core/           SampleSet, error sentinels, input validators
//	lagrange/       Evaluate, EstimateError, Factorial, Polynomial
//	spline/         BuildNatural, Model (Eval, EvalAll, Diff, Segment)
//	builder/        Uniform, Chebyshev, Linspace with noise options
//	cmd/lvinterp/   command-line driver (lagrange, spline, menu, generate)
//
// Quick example:
//
//	m, _ := spline.BuildNatural([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})
//	v, _ := m.Eval(2.5) // 6.2
//
//	go get github.com/katalvlaran/lvinterp
package lvinterp
