// SPDX-License-Identifier: MIT

// Package dataset supplies sample sets to the lvinterp driver: two built-in
// demos and loaders for YAML files and whitespace-separated column tables.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/katalvlaran/lvinterp/core"
)

// ErrUnknownDemo is returned by Demo for a name not listed by Names.
var ErrUnknownDemo = errors.New("dataset: unknown demo")

// Dataset is a named sample set with a default query point.
//
// Order is the Taylor remainder order passed to the Lagrange error estimate;
// loaders default it to Len()-1.
type Dataset struct {
	Name  string
	X, Y  []float64
	Point float64
	Order int

	bound core.Func
}

// Len reports the number of samples.
func (d *Dataset) Len() int { return len(d.X) }

// Bound returns the derivative bound used by the error estimate, or nil when
// the dataset does not carry one.
func (d *Dataset) Bound() core.Func { return d.bound }

// Samples validates the dataset as an ordered sample set.
func (d *Dataset) Samples() (*core.SampleSet, error) {
	return core.NewSampleSet(d.X, d.Y)
}

func constBound(m float64) core.Func {
	return func(float64) float64 { return m }
}

var demos = map[string]func() *Dataset{
	"lnpow":   lnPow,
	"squares": squares,
}

// Names lists the built-in demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Demo returns a fresh copy of the named built-in dataset.
func Demo(name string) (*Dataset, error) {
	mk, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownDemo, name, strings.Join(Names(), ", "))
	}

	return mk(), nil
}

// Resolve accepts a demo name or a file path. Files ending in .yaml or .yml
// are read with LoadYAML; anything else is read with LoadTable using columns
// 0 and 1.
func Resolve(ref string) (*Dataset, error) {
	if _, ok := demos[ref]; ok {
		return Demo(ref)
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml":
		return LoadYAML(ref)
	default:
		return LoadTable(ref, 0, 1)
	}
}

// LnPow is f(x) = (ln x)^(5/3).
func LnPow(x float64) float64 { return math.Pow(math.Log(x), 5.0/3) }

// LnPowDeriv is f'(x) = (5/3)(ln x)^(2/3) / x, the bound the lnpow demo
// feeds to the error estimate.
func LnPowDeriv(x float64) float64 { return (5.0 / 3) * math.Pow(math.Log(x), 2.0/3) / x }

// lnPow samples (ln x)^(5/3) at 2, 6 and 10 and queries 6.5.
func lnPow() *Dataset {
	x := []float64{2, 6, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = LnPow(v)
	}

	return &Dataset{Name: "lnpow", X: x, Y: y, Point: 6.5, Order: len(x) - 1, bound: LnPowDeriv}
}

// squares samples y = x² at 1..4 and queries 2.5.
func squares() *Dataset {
	return &Dataset{
		Name:  "squares",
		X:     []float64{1, 2, 3, 4},
		Y:     []float64{1, 4, 9, 16},
		Point: 2.5,
		Order: 3,
		bound: constBound(0), // the fourth derivative of x² vanishes
	}
}
