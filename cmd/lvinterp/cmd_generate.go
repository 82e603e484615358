// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvinterp/builder"
	"github.com/katalvlaran/lvinterp/internal/dataset"
	"github.com/spf13/cobra"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		fn, method, format string
		lo, hi, noise      float64
		n                  int
		seed               int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample a named function and print the samples as YAML or a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := dataset.Func(fn)
			if err != nil {
				return err
			}
			if noise < 0 || math.IsNaN(noise) || math.IsInf(noise, 0) {
				return fmt.Errorf("--noise = %v, must be finite and >= 0", noise)
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithNoise(noise)}

			gen := builder.Uniform
			switch {
			case strings.EqualFold(method, builder.MethodUniform):
			case strings.EqualFold(method, builder.MethodChebyshev):
				gen = builder.Chebyshev
			default:
				return fmt.Errorf("unknown --method %q (have uniform, chebyshev)", method)
			}

			s, err := gen(f, lo, hi, n, opts...)
			if err != nil {
				return err
			}
			d := dataset.FromSamples(fn, s)
			d.Point = (lo + hi) / 2
			a.log.Debug("generated", "func", fn, "method", method, "n", n, "noise", noise)

			switch strings.ToLower(format) {
			case "yaml":
				return d.WriteYAML(cmd.OutOrStdout())
			case "table":
				return d.WriteTable(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown --format %q (have yaml, table)", format)
			}
		},
	}
	cmd.Flags().StringVar(&fn, "func", "square", "function: "+strings.Join(dataset.FuncNames(), ", "))
	cmd.Flags().StringVar(&method, "method", "uniform", "knot placement: uniform or chebyshev")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or table")
	cmd.Flags().Float64Var(&lo, "a", -1, "interval start")
	cmd.Flags().Float64Var(&hi, "b", 1, "interval end")
	cmd.Flags().IntVarP(&n, "samples", "n", 5, "number of samples")
	cmd.Flags().Float64Var(&noise, "noise", 0, "standard deviation of Gaussian noise added to y")
	cmd.Flags().Int64Var(&seed, "seed", builder.DefaultNoiseSeed, "noise seed")

	return cmd
}
