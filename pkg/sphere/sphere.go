// Package sphere puts points on the surface of a unit sphere.
package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var phi = (1 + math.Sqrt(5)) / 2 // golden ratio

// Points returns n unit vectors spread evenly over a sphere with a
// Fibonacci lattice. Point i has height y = 1 - 2i/(n-1), so the
// first is at the north pole and the last at the south pole, and it
// is rotated 2π/φ further round than its predecessor.
// The same n always gives the same points. n <= 0 gives none.
func Points(n int) []r3.Vec {
	if n <= 0 {
		return nil
	}
	pts := make([]r3.Vec, n)
	for i := range pts {
		y := 0.0
		if n > 1 {
			y = 1 - 2*float64(i)/float64(n-1)
		}
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := 2 * math.Pi * float64(i) / phi
		pts[i] = r3.Vec{X: math.Cos(theta) * radius, Y: y, Z: math.Sin(theta) * radius}
	}
	return pts
}
