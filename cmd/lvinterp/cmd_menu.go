// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvinterp/internal/dataset"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Choose a demo interactively: 1 Lagrange polynomial, 2 cubic spline",
		Args:  cobra.NoArgs,
		RunE:  a.runMenu,
	}
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	out := a.printer(cmd)
	out.printf("Choose an interpolation method:\n")
	out.printf("1 - Lagrange polynomial\n")
	out.printf("2 - Cubic spline\n")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("menu: reading choice: %w", err)
	}
	choice, err := cast.ToIntE(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	a.log.Debug("menu choice", "choice", choice)

	switch choice {
	case 1:
		d, err := dataset.Demo("lnpow")
		if err != nil {
			return err
		}
		out.printf("function: f(x) = (ln x)^(5/3)\n")

		return a.runLagrange(cmd, d, d.Point, a.cfg.Lagrange.ProbeGrid)
	case 2:
		d, err := dataset.Demo("squares")
		if err != nil {
			return err
		}

		return a.runSpline(cmd, d, []float64{d.Point})
	default:
		return fmt.Errorf("menu: unknown choice %d", choice)
	}
}
