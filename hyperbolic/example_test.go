// SPDX-License-Identifier: MIT

package hyperbolic_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
)

// ExamplePullback keeps an inner point and moves one that hugs the sphere.
func ExamplePullback() {
	ball, _ := hyperbolic.NewPoincareBatch([][]float64{{0.9, 0}, {0.999999, 0}})
	safe, _ := hyperbolic.Pullback(ball)

	for _, p := range safe.Points() {
		fmt.Printf("%.5f\n", math.Hypot(p[0], p[1]))
	}
	// Output:
	// 0.90000
	// 0.99999
}

// ExampleToHyperboloid lifts a ball point onto the upper sheet.
func ExampleToHyperboloid() {
	ball, _ := hyperbolic.NewPoincareBatch([][]float64{{0.5, 0}})
	lifted, _ := hyperbolic.ToHyperboloid(ball)

	h, _ := lifted.Point(0)
	fmt.Printf("%.4f %.4f %.4f\n", h[0], h[1], h[2])
	// Output:
	// 1.3333 0.0000 1.6667
}

// ExampleHyperbolicDistance measures from the origin without the stabilizer.
func ExampleHyperbolicDistance() {
	ball, _ := hyperbolic.NewPoincareBatch([][]float64{{0, 0}, {0.5, 0}})
	lifted, _ := hyperbolic.ToHyperboloid(ball)
	origin, _ := lifted.Point(0)

	dist, _ := hyperbolic.HyperbolicDistance(origin, lifted, hyperbolic.WithStabilizer(0))
	fmt.Printf("%.4f %.4f\n", dist[0], dist[1])
	// Output:
	// 0.0000 1.0986
}

// ExampleMinkowskiDotMatrix shows the Gram matrix of two sheet points.
func ExampleMinkowskiDotMatrix() {
	ball, _ := hyperbolic.NewPoincareBatch([][]float64{{0, 0}, {0.5, 0}})
	lifted, _ := hyperbolic.ToHyperboloid(ball)

	gram, _ := hyperbolic.MinkowskiDotMatrix(lifted, lifted)
	for i := 0; i < 2; i++ {
		row := gram.RawRow(i)
		fmt.Printf("%.4f %.4f\n", row[0], row[1])
	}
	// Output:
	// -1.0000 -1.6667
	// -1.6667 -1.0000
}
