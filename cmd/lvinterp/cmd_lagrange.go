// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvinterp/internal/dataset"
	"github.com/katalvlaran/lvinterp/lagrange"
	"github.com/spf13/cobra"
)

func (a *app) lagrangeCmd() *cobra.Command {
	var (
		ref   string
		point float64
		order int
		probe int
	)
	cmd := &cobra.Command{
		Use:   "lagrange",
		Short: "Evaluate the Lagrange polynomial and its error estimate at a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, p, err := a.resolve(cmd, a.cfg.Lagrange.Dataset, a.cfg.Lagrange.Point, ref)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("point") {
				p = point
			}
			if cmd.Flags().Changed("order") {
				d.Order = order
			}
			k := a.cfg.Lagrange.ProbeGrid
			if cmd.Flags().Changed("probe-grid") {
				k = probe
			}
			if k < 0 {
				return fmt.Errorf("--probe-grid = %d, must be >= 0", k)
			}

			return a.runLagrange(cmd, d, p, k)
		},
	}
	cmd.Flags().StringVar(&ref, "dataset", "", "demo name ("+joinNames()+") or .yaml/.txt sample file")
	cmd.Flags().Float64Var(&point, "point", 0, "query point")
	cmd.Flags().IntVar(&order, "order", 0, "error estimate order (default: samples-1)")
	cmd.Flags().IntVar(&probe, "probe-grid", 0, "extra evenly spaced probe points for the derivative bound")

	return cmd
}

func (a *app) runLagrange(cmd *cobra.Command, d *dataset.Dataset, point float64, probe int) error {
	out := a.printer(cmd)
	out.printf("dataset: %s\n", d.Name)
	out.samples(d.X, d.Y)
	out.printf("point: %s\n", out.g(point))

	v, err := lagrange.Evaluate(d.X, d.Y, point)
	if err != nil {
		return err
	}
	if lo, hi := slices.Min(d.X), slices.Max(d.X); point < lo || point > hi {
		a.log.Warn("extrapolating outside the sample range", "point", point, "min", lo, "max", hi)
	}
	out.printf("P(%s) = %s\n", out.g(point), out.f(v))

	bound := d.Bound()
	if bound == nil {
		a.log.Info("no derivative bound, error estimate skipped", "dataset", d.Name)
		return nil
	}
	e, err := lagrange.EstimateError(bound, d.X, point, d.Order, lagrange.WithProbeGrid(probe))
	if err != nil {
		return err
	}
	out.printf("error <= %s\n", out.f(e))
	a.log.Debug("lagrange done", "order", d.Order, "probe_grid", probe)

	return nil
}

// resolve loads the dataset for a command. A --dataset flag replaces the
// configured dataset and its configured point; the file's own point is used
// instead.
func (a *app) resolve(cmd *cobra.Command, cfgRef string, cfgPoint float64, flagRef string) (*dataset.Dataset, float64, error) {
	ref, point := cfgRef, cfgPoint
	custom := cmd.Flags().Changed("dataset")
	if custom {
		ref = flagRef
	}

	d, err := dataset.Resolve(ref)
	if err != nil {
		return nil, 0, err
	}
	if custom {
		point = d.Point
	}
	a.log.Debug("dataset resolved", "ref", ref, "samples", d.Len(), "point", point)

	return d, point, nil
}
