// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a dataset file of the form
//
//	name: runge
//	x: [-1, -0.5, 0, 0.5, 1]
//	y: [0.0385, 0.1379, 1, 0.1379, 0.0385]
//	point: 0.25   # optional
//	order: 4      # optional, defaults to len(x)-1
//	bound: 1200   # optional constant derivative bound
//
// Scalars may be written as numbers or quoted strings.
func LoadYAML(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return parseYAML(path, raw)
}

func parseYAML(path string, raw []byte) (*Dataset, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	d := &Dataset{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	if v, ok := doc["name"]; ok {
		d.Name = cast.ToString(v)
	}

	var err error
	if d.X, err = floatList(doc, "x"); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	if d.Y, err = floatList(doc, "y"); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	if v, ok := doc["point"]; ok {
		if d.Point, err = cast.ToFloat64E(v); err != nil {
			return nil, fmt.Errorf("dataset: %s: point: %w", path, err)
		}
	}

	d.Order = len(d.X) - 1
	if v, ok := doc["order"]; ok {
		if d.Order, err = cast.ToIntE(v); err != nil {
			return nil, fmt.Errorf("dataset: %s: order: %w", path, err)
		}
	}
	if v, ok := doc["bound"]; ok {
		m, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: bound: %w", path, err)
		}
		d.bound = constBound(m)
	}

	return d, nil
}

func floatList(doc map[string]interface{}, key string) ([]float64, error) {
	v, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("missing %q", key)
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	out := make([]float64, len(items))
	for i, item := range items {
		if out[i], err = cast.ToFloat64E(item); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
	}

	return out, nil
}

// LoadTable reads columns xcol and ycol from a whitespace-separated text
// table. The query point is left at 0.
func LoadTable(path string, xcol, ycol int) (*Dataset, error) {
	if xcol < 0 || ycol < 0 || xcol == ycol {
		return nil, fmt.Errorf("dataset: bad columns x=%d y=%d", xcol, ycol)
	}
	cols, err := table.ReadTable(path, []int{xcol, ycol}, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	x, y := cols[0], cols[1]

	return &Dataset{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		X:     x,
		Y:     y,
		Order: len(x) - 1,
	}, nil
}

type yamlDoc struct {
	Name  string    `yaml:"name"`
	X     []float64 `yaml:"x,flow"`
	Y     []float64 `yaml:"y,flow"`
	Point float64   `yaml:"point"`
	Order int       `yaml:"order"`
}

// WriteYAML writes d in the format read by LoadYAML. The derivative bound is
// a function and is not written.
func (d *Dataset) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDoc{Name: d.Name, X: d.X, Y: d.Y, Point: d.Point, Order: d.Order}); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	return enc.Close()
}

// WriteTable writes d as a two-column table readable by LoadTable(path, 0, 1).
func (d *Dataset) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range d.X {
		fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(d.X[i], 'g', -1, 64), strconv.FormatFloat(d.Y[i], 'g', -1, 64))
	}

	return bw.Flush()
}
