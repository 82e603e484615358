// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/lvinterp/core"
	"github.com/katalvlaran/lvinterp/internal/dataset"
	"github.com/katalvlaran/lvinterp/spline"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) splineCmd() *cobra.Command {
	var (
		ref    string
		points []float64
		coeffs bool
	)
	cmd := &cobra.Command{
		Use:   "spline",
		Short: "Build a natural cubic spline and evaluate it at one or more points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, p, err := a.resolve(cmd, a.cfg.Spline.Dataset, a.cfg.Spline.Point, ref)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("point") {
				points = []float64{p}
			}
			if cmd.Flags().Changed("coefficients") {
				a.cfg.Output.Coefficients = coeffs
			}

			return a.runSpline(cmd, d, points)
		},
	}
	cmd.Flags().StringVar(&ref, "dataset", "", "demo name ("+joinNames()+") or .yaml/.txt sample file")
	cmd.Flags().Float64SliceVar(&points, "point", nil, "query point; repeat or comma-separate for several")
	cmd.Flags().BoolVar(&coeffs, "coefficients", true, "print step sizes and per-interval coefficients")

	return cmd
}

func (a *app) runSpline(cmd *cobra.Command, d *dataset.Dataset, points []float64) error {
	out := a.printer(cmd)
	out.printf("dataset: %s\n", d.Name)
	out.samples(d.X, d.Y)

	model, err := spline.BuildNatural(d.X, d.Y)
	if err != nil {
		return err
	}
	a.log.Debug("spline built", "intervals", model.Len())

	if a.cfg.Output.Coefficients {
		x := model.Knots()
		out.printf("steps:\n")
		for i := 0; i+1 < len(x); i++ {
			out.printf("  h[%d] = %s\n", i, out.f(x[i+1]-x[i]))
		}
		out.printf("coefficients:\n")
		for i := 0; i < model.Len(); i++ {
			lo, hi, c, err := model.Segment(i)
			if err != nil {
				return err
			}
			out.printf("  [%s, %s]: a=%s b=%s c=%s d=%s\n",
				out.g(lo), out.g(hi), out.f(c.A), out.f(c.B), out.f(c.C), out.f(c.D))
		}
	}

	values, errs, err := evalPoints(cmd, model, points)
	if err != nil {
		return err
	}
	outside := 0
	for i, p := range points {
		switch {
		case errs[i] == nil:
			out.printf("S(%s) = %s\n", out.g(p), out.f(values[i]))
		case errors.Is(errs[i], core.ErrOutOfDomain):
			outside++
			out.printf("S(%s) out of domain\n", out.g(p))
		default:
			return errs[i]
		}
	}
	if outside > 0 {
		lo, hi := model.Domain()
		a.log.Warn("points outside the spline domain", "count", outside, "min", lo, "max", hi)
	}

	return nil
}

// evalPoints evaluates the model at every point concurrently. Per-point
// failures are returned in errs; err is set only when the command context is
// cancelled.
func evalPoints(cmd *cobra.Command, m *spline.Model, points []float64) (values []float64, errs []error, err error) {
	values = make([]float64, len(points))
	errs = make([]error, len(points))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range points {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values[i], errs[i] = m.Eval(p)
			return nil
		})
	}

	return values, errs, g.Wait()
}
