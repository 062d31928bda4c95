// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
)

func newMinkowskiCmd(a *app) *cobra.Command {
	var (
		left, right []string
		ball        bool
	)

	cmd := &cobra.Command{
		Use:   "minkowski",
		Short: "Print the Minkowski inner-product matrix of two batches",
		Long: `Print G[i][j] = <a_i, b_j>, the Minkowski inner product with the last
coordinate timelike. --b defaults to --a.`,
		Example: `  hyperbolic minkowski --a 1,2,3 --b 4,5,6
  hyperbolic minkowski --ball --a 0,0 --a 0.5,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(right) == 0 {
				right = left
			}
			ra, err := parsePoints(left)
			if err != nil {
				return err
			}
			rb, err := parsePoints(right)
			if err != nil {
				return err
			}
			ha, err := a.hyperboloidBatch(ra, ball)
			if err != nil {
				return err
			}
			hb, err := a.hyperboloidBatch(rb, ball)
			if err != nil {
				return err
			}
			gram, err := hyperbolic.MinkowskiDotMatrix(ha, hb)
			if err != nil {
				return err
			}

			rows := denseRows(gram)
			return a.emit(cmd.OutOrStdout(), map[string]any{"gram": rows}, indexHeader("b", hb.Len()), rows)
		},
	}
	cmd.Flags().StringArrayVar(&left, "a", nil, "Row vector of the left batch (repeatable)")
	cmd.Flags().StringArrayVar(&right, "b", nil, "Row vector of the right batch (repeatable)")
	cmd.Flags().BoolVar(&ball, "ball", false, "Inputs are ball points: pull back and lift first")

	return cmd
}

func newDistanceCmd(a *app) *cobra.Command {
	var (
		from   string
		points []string
		ball   bool
	)

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Hyperbolic distances on the hyperboloid",
		Long: `Print arccosh(-<u, v> + δ) from --from to every --point. Without --from,
print the full pairwise distance matrix of the --point batch.`,
		Example: `  hyperbolic distance --ball --from 0,0 --point 0.5,0 --point 0,0.9
  hyperbolic distance --ball --point 0,0 --point 0.5,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parsePoints(points)
			if err != nil {
				return err
			}
			batch, err := a.hyperboloidBatch(rows, ball)
			if err != nil {
				return err
			}

			if from == "" {
				dm, err := hyperbolic.PairwiseDistances(batch, batch, a.opts...)
				if err != nil {
					return err
				}
				out := denseRows(dm)
				return a.emit(cmd.OutOrStdout(), map[string]any{"distances": out}, indexHeader("p", batch.Len()), out)
			}

			u, err := parsePoint(from)
			if err != nil {
				return err
			}
			source, err := a.hyperboloidBatch([][]float64{u}, ball)
			if err != nil {
				return err
			}
			if u, err = source.Point(0); err != nil {
				return err
			}
			dist, err := hyperbolic.HyperbolicDistance(u, batch, a.opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), map[string]any{"distances": dist}, distanceHeader, columnRows(dist))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source vector as comma-separated coordinates")
	cmd.Flags().StringArrayVar(&points, "point", nil, "Target vector (repeatable)")
	cmd.Flags().BoolVar(&ball, "ball", false, "Inputs are ball points: pull back and lift first")

	return cmd
}

func newPoincareDistanceCmd(a *app) *cobra.Command {
	var (
		from   string
		points []string
	)

	cmd := &cobra.Command{
		Use:     "poincare-distance",
		Short:   "Geodesic distances computed inside the Poincaré ball",
		Example: `  hyperbolic poincare-distance --from 0,0 --point 0.5,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				return errNoSource
			}
			x, err := parsePoint(from)
			if err != nil {
				return err
			}
			rows, err := parsePoints(points)
			if err != nil {
				return err
			}

			dist := make([]float64, len(rows))
			for i, y := range rows {
				if dist[i], err = hyperbolic.PoincareDistance(x, y, a.opts...); err != nil {
					return err
				}
			}

			return a.emit(cmd.OutOrStdout(), map[string]any{"distances": dist}, distanceHeader, columnRows(dist))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source ball point (required)")
	cmd.Flags().StringArrayVar(&points, "point", nil, "Target ball point (repeatable)")

	return cmd
}

var distanceHeader = []string{"distance"}

// columnRows turns a vector into one single-value row per entry.
func columnRows(v []float64) [][]float64 {
	rows := make([][]float64, len(v))
	for i := range v {
		rows[i] = v[i : i+1]
	}

	return rows
}
