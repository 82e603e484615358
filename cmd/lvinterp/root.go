// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvinterp/internal/config"
	"github.com/katalvlaran/lvinterp/internal/dataset"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfg      config.Config
	cfgPath  string
	logLevel string
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: slog.Default()}

	root := &cobra.Command{
		Use:               "lvinterp",
		Short:             "Lagrange polynomial and natural cubic spline interpolation",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "gcfg configuration file (see example-config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override [Log] Level: debug, info, warn, error")

	root.AddCommand(
		a.lagrangeCmd(),
		a.splineCmd(),
		a.menuCmd(),
		a.generateCmd(),
		&cobra.Command{
			Use:   "example-config",
			Short: "Print a documented configuration file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.ExampleConfigFile)
				return err
			},
		},
	)

	return root
}

// setup loads the configuration file and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgPath != "" {
		cfg, err := config.Read(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	name := a.cfg.Log.Level
	if a.logLevel != "" {
		name = a.logLevel
	}
	level, err := config.ParseLevel(name)
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded", "path", a.cfgPath, "level", level)

	return nil
}

// printer formats results with the configured precision.
type printer struct {
	w    io.Writer
	prec int
}

func (a *app) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), prec: a.cfg.Output.Precision}
}

// f formats a computed value.
func (p printer) f(v float64) string { return strconv.FormatFloat(v, 'f', p.prec, 64) }

// g formats an input value in its shortest exact form.
func (p printer) g(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (p printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p printer) samples(x, y []float64) {
	p.printf("samples:\n")
	for i := range x {
		p.printf("  x[%d] = %s, y[%d] = %s\n", i, p.g(x[i]), i, p.f(y[i]))
	}
}

func joinNames() string { return strings.Join(dataset.Names(), ", ") }
