// SPDX-License-Identifier: MIT
// Package: lvinterp/core
//
// types.go: the SampleSet value shared by the spline and polynomial packages.
//
// Contract:
//   - A SampleSet owns private copies of its knots and values; callers may
//     reuse their slices after construction.
//   - Knots are strictly increasing, values are finite, n ≥ MinSamples.
//   - A SampleSet is immutable and safe for concurrent reads.

package core

// MinSamples is the smallest sample count a SampleSet accepts.
const MinSamples = 2

// SampleSet is an ordered sequence of knots x[0..n-1] paired with values
// y[0..n-1].
type SampleSet struct {
	x []float64
	y []float64
}

// NewSampleSet validates x and y and returns a SampleSet holding copies of
// both.
//
// Errors:
//   - ErrInvalidArgument: len(x) != len(y), n < MinSamples, NaN/Inf entries.
//   - ErrDegenerateInput: x not strictly increasing.
//
// Complexity: O(n) time, O(n) space.
func NewSampleSet(x, y []float64) (*SampleSet, error) {
	if err := ValidateSamples(x, y, MinSamples); err != nil {
		return nil, Errorf("NewSampleSet", err, "")
	}

	s := &SampleSet{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(s.x, x)
	copy(s.y, y)

	return s, nil
}

// Len returns the number of samples.
func (s *SampleSet) Len() int { return len(s.x) }

// At returns the i-th knot and its value. It panics if i is out of range,
// like a slice index would.
func (s *SampleSet) At(i int) (x, y float64) { return s.x[i], s.y[i] }

// X returns a copy of the knots.
func (s *SampleSet) X() []float64 { return append([]float64(nil), s.x...) }

// Y returns a copy of the values.
func (s *SampleSet) Y() []float64 { return append([]float64(nil), s.y...) }

// Domain returns the closed interval [x[0], x[n-1]] covered by the samples.
func (s *SampleSet) Domain() (lo, hi float64) { return s.x[0], s.x[len(s.x)-1] }

// Contains reports whether p lies inside Domain(), endpoints included.
func (s *SampleSet) Contains(p float64) bool {
	lo, hi := s.Domain()

	return p >= lo && p <= hi
}
