// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/lvinterp/core"
)

// ErrUnknownFunc is returned by Func for a name not listed by FuncNames.
var ErrUnknownFunc = errors.New("dataset: unknown function")

var funcs = map[string]core.Func{
	"square": func(x float64) float64 { return x * x },
	"lnpow":  LnPow,
	"sin":    math.Sin,
	"exp":    math.Exp,
	// Runge's function, the classic failure case for equispaced knots.
	"runge": func(x float64) float64 { return 1 / (1 + 25*x*x) },
}

// FuncNames lists the functions the generator can sample.
func FuncNames() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Func looks up a named function.
func Func(name string) (core.Func, error) {
	f, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownFunc, name, strings.Join(FuncNames(), ", "))
	}

	return f, nil
}

// FromSamples wraps a validated sample set as a Dataset.
func FromSamples(name string, s *core.SampleSet) *Dataset {
	return &Dataset{Name: name, X: s.X(), Y: s.Y(), Order: s.Len() - 1}
}
