// Package hydro makes a sliding window hydropathy profile along a
// sequence with the Kyte and Doolittle scale.
package hydro

import (
	"bytes"
	"fmt"

	"github.com/andrew-torda/biohub/pkg/aa"
	"gonum.org/v1/gonum/stat"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEvenWindow = Error("window size must be odd")
	ErrBadWindow  = Error("window size must be positive")
)

const DfltWindow = 9

// Profile returns one score per residue, the mean hydropathy over a
// window centred on the residue. Windows are cut short at the ends of
// the sequence, not padded. Unknown letters score zero.
func Profile(seq []byte, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrBadWindow, window)
	}
	if window%2 == 0 {
		return nil, fmt.Errorf("%w, got %d", ErrEvenWindow, window)
	}
	seq = bytes.ToUpper(seq)
	kd := make([]float64, len(seq))
	for i, c := range seq {
		kd[i] = aa.KyteDoolittle[c]
	}
	half := window / 2
	scores := make([]float64, len(seq))
	for i := range scores {
		lo, hi := max(0, i-half), min(len(seq), i+half+1)
		scores[i] = stat.Mean(kd[lo:hi], nil)
	}
	return scores, nil
}
