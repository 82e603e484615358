// Package builder generates sample sets from known functions, for tests,
// benchmarks, demos, and the command line driver.
//
// The package offers the following key components:
//
//   - Generators:
//     – Uniform:    n evenly spaced knots on [a, b], endpoints included.
//     – Chebyshev:  n Chebyshev nodes of the first kind mapped to [a, b].
//     – Linspace:   the bare evenly spaced grid, also used by the Lagrange
//     error estimator's probe grid.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithNoise, WithTrend, WithSeed, WithRand.
//   - Validation helpers:
//     – validateMin, validateInterval, validateFunc.
//   - Shared constants:
//     – MinNodes, DefaultNoiseSeed, MethodUniform, MethodChebyshev.
//
// Guarantees:
//
//   - Deterministic output: noisy generators are seeded (DefaultNoiseSeed
//     unless WithSeed/WithRand is given).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors wrap core.ErrInvalidArgument / core.ErrDegenerateInput
//     with the constructor name for context.
//   - Every result is a validated core.SampleSet: strictly increasing knots,
//     finite values.
package builder
