// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
)

func newLiftCmd(a *app) *cobra.Command {
	var (
		points   []string
		pullback bool
		inverse  bool
	)

	cmd := &cobra.Command{
		Use:   "lift",
		Short: "Map ball points onto the hyperboloid (or back with --inverse)",
		Long: `Lift each ball point x onto the upper hyperboloid sheet:
(2x, 1+|x|²) / (1-|x|²). The result has one more coordinate than the input.

With --inverse the points are hyperboloid vectors and are projected back
into the ball.`,
		Example: `  hyperbolic lift --point 0.5,0
  hyperbolic lift --pullback --point 1,0
  hyperbolic lift --inverse --point 1.3333333333333333,0,1.6666666666666667`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parsePoints(points)
			if err != nil {
				return err
			}

			if inverse {
				h, err := hyperbolic.NewHyperboloidBatch(rows)
				if err != nil {
					return err
				}
				ball, err := hyperbolic.ToPoincare(h)
				if err != nil {
					return err
				}
				return a.emit(cmd.OutOrStdout(), map[string]any{"points": ball.Points()},
					coordHeader(ball.Dim(), false), ball.Points())
			}

			ball, err := hyperbolic.NewPoincareBatch(rows)
			if err != nil {
				return err
			}
			if pullback {
				if ball, err = hyperbolic.Pullback(ball, a.opts...); err != nil {
					return err
				}
			}
			h, err := hyperbolic.ToHyperboloid(ball)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), map[string]any{"points": h.Points()},
				coordHeader(h.Dim(), true), h.Points())
		},
	}
	cmd.Flags().StringArrayVar(&points, "point", nil, "Point as comma-separated coordinates (repeatable)")
	cmd.Flags().BoolVar(&pullback, "pullback", false, "Pull points back inside radius 1-ε before lifting")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Project hyperboloid vectors back into the ball")
	cmd.MarkFlagsMutuallyExclusive("pullback", "inverse")

	return cmd
}
