// Package pdbtest makes pdb records for tests and readers which break
// in controlled ways.
package pdbtest

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Rec is what goes into one ATOM or HETATM line.
type Rec struct {
	Het     bool
	Serial  int
	Name    string // "CA", "N", ... padded the pdb way by Line
	ResName string
	Chain   byte
	ResNum  int
	X, Y, Z float64
	Bfac    float64
	Element string // may be blank, then readers guess from the name
}

// padName puts atom names in columns the way the pdb does. Names
// of one letter elements start in the second column of the field.
func padName(name string) string {
	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("%-4s", name)
}

// Line formats the record in fixed columns, 80 wide.
func (r Rec) Line() string {
	tag := "ATOM"
	if r.Het {
		tag = "HETATM"
	}
	chain := r.Chain
	if chain == 0 {
		chain = ' '
	}
	return fmt.Sprintf("%-6s%5d %s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		tag, r.Serial, padName(r.Name), r.ResName, chain, r.ResNum,
		r.X, r.Y, r.Z, 1.0, r.Bfac, r.Element)
}

// File joins records into the text of a pdb file with a header and
// an END line.
func File(recs ...Rec) string {
	var b strings.Builder
	b.WriteString("HEADER    TEST STRUCTURE\n")
	for _, r := range recs {
		b.WriteString(r.Line())
		b.WriteByte('\n')
	}
	b.WriteString("END\n")
	return b.String()
}

// CA makes a single alpha carbon.
func CA(serial int, chain byte, resnum int, resname string, x, y, z float64) Rec {
	return Rec{Serial: serial, Name: "CA", ResName: resname, Chain: chain,
		ResNum: resnum, X: x, Y: y, Z: z, Element: "C"}
}

// ErrBroken is what a BrknRdr returns when it gives up.
var ErrBroken = errors.New("pdbtest: broken read")

// BrknRdr is a wrapper around an io.Reader. It passes through
// nGood bytes and then fails.
type BrknRdr struct {
	rdr_orig io.Reader
	nGood    int
	nByte    int
}

// NewReader returns a reader which fails after nGood bytes.
func NewReader(rIn io.Reader, nGood int) *BrknRdr {
	return &BrknRdr{rdr_orig: rIn, nGood: nGood}
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdr) Read(p []byte) (int, error) {
	left := r.nGood - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err := r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}
