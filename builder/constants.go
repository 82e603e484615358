// Package builder defines shared constants used by sample-set generators,
// ensuring consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodUniform is the canonical name for the Uniform constructor.
	MethodUniform = "Uniform"
	// MethodChebyshev is the canonical name for the Chebyshev constructor.
	MethodChebyshev = "Chebyshev"
)

//-----------------------------------------------------------------------------
// Minimum Sample Counts
//-----------------------------------------------------------------------------

// MinNodes is the smallest node count a generator accepts; it matches the
// minimum a spline can be built from.
const MinNodes = 2

//-----------------------------------------------------------------------------
// Noise Defaults
//-----------------------------------------------------------------------------

// DefaultNoiseSeed seeds the local RNG when noise is requested without
// WithSeed/WithRand, keeping noisy fixtures reproducible.
const DefaultNoiseSeed int64 = 1
