package sasa

import "gonum.org/v1/gonum/spatial/r3"

// FirstOccluder lets tests build balls from centres and radii.
func FirstOccluder(p r3.Vec, c []r3.Vec, r []float64) int {
	balls := make([]ball, len(c))
	cand := make([]int, len(c))
	for i := range c {
		balls[i] = ball{c: c[i], r: r[i], r2: r[i] * r[i]}
		cand[i] = i
	}
	return firstOccluder(p, cand, balls)
}
