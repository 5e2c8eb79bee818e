// Distances between points and between groups of points.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrEmpty = Error("empty point set")

// Dist2 gives us the distance squared
func Dist2(x1, x2 r3.Vec) float64 { return r3.Norm2(r3.Sub(x1, x2)) }

// Dist is the Euclidean distance between two points
func Dist(x1, x2 r3.Vec) float64 { return math.Sqrt(Dist2(x1, x2)) }

// MinDist2 returns the smallest squared distance between any point
// in a and any point in b. We work with squares and only take one
// square root at the end in MinDist.
func MinDist2(a, b []r3.Vec) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return math.Inf(1), ErrEmpty
	}
	dmin := math.Inf(1)
	for _, x := range a {
		for _, y := range b {
			if d := Dist2(x, y); d < dmin {
				dmin = d
			}
		}
	}
	return dmin, nil
}

// MinDist is the closest approach of two point sets, for example the
// atoms of two residues.
func MinDist(a, b []r3.Vec) (float64, error) {
	d2, err := MinDist2(a, b)
	if err != nil {
		return d2, err
	}
	return math.Sqrt(d2), nil
}
