// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
)

func newPullbackCmd(a *app) *cobra.Command {
	var points []string

	cmd := &cobra.Command{
		Use:   "pullback",
		Short: "Pull ball points back inside radius 1-ε",
		Long: `Rescale every point whose Euclidean norm exceeds 1-ε onto the sphere of
radius 1-ε, keeping its direction. Points already inside are unchanged.`,
		Example: `  hyperbolic pullback --point 0.9,0 --point 0.999999,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parsePoints(points)
			if err != nil {
				return err
			}
			ball, err := hyperbolic.NewPoincareBatch(rows)
			if err != nil {
				return err
			}
			pulled, err := hyperbolic.BoundaryCount(ball, a.opts...)
			if err != nil {
				return err
			}
			safe, err := hyperbolic.Pullback(ball, a.opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), map[string]any{
				"points": safe.Points(),
				"pulled": pulled,
			}, coordHeader(safe.Dim(), false), safe.Points())
		},
	}
	cmd.Flags().StringArrayVar(&points, "point", nil, "Ball point as comma-separated coordinates (repeatable)")

	return cmd
}
