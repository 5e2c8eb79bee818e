package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/biohub/pdb/zwrap"
)

const (
	ErrBfacCount = Error("number of values does not match number of atoms")
	maxBfac      = 999.99 // widest number that fits in the column
)

// setBfac returns the line with the B-factor columns replaced.
// Short lines are padded with blanks.
func setBfac(line []byte, v float64) []byte {
	if v > maxBfac {
		v = maxBfac
	}
	if v < -99.99 {
		v = -99.99
	}
	out := make([]byte, len(line), len(line)+cols.bfac.end)
	copy(out, line)
	for len(out) < cols.bfac.end {
		out = append(out, ' ')
	}
	copy(out[cols.bfac.start:cols.bfac.end], fmt.Sprintf("%6.2f", v))
	return out
}

// WriteBfac copies pdb text from src to dst, writing bfac[n] into the
// B-factor column of the n'th atom record. The counting is the same
// as in ParseAtoms, so broken records are copied unchanged and do
// not use up a value. Values and atoms must match in number.
func WriteBfac(dst io.Writer, src io.Reader, bfac []float64) error {
	wrtr := bufio.NewWriter(dst)
	scnnr := bufio.NewScanner(src)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	n := 0
	for scnnr.Scan() {
		line := bytes.TrimRight(scnnr.Bytes(), "\r")
		if het, ok := recordTag(line); ok {
			if _, err := parseAtom(line, het); err == nil {
				if n >= len(bfac) {
					return fmt.Errorf("%w: more than %d atoms", ErrBfacCount, len(bfac))
				}
				line = setBfac(line, bfac[n])
				n++
			}
		}
		if _, err := wrtr.Write(line); err != nil {
			return err
		}
		if err := wrtr.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := scnnr.Err(); err != nil {
		return err
	}
	if n != len(bfac) {
		return fmt.Errorf("%w: %d atoms, %d values", ErrBfacCount, n, len(bfac))
	}
	return wrtr.Flush()
}

// WriteBfacFile is WriteBfac working on file names. The input may be
// gzipped. The output is plain text.
func WriteBfacFile(outfile, infile string, bfac []float64) error {
	fp, err := os.Open(infile)
	if err != nil {
		return err
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return errorName(infile, err)
	}
	defer rdr.Close()
	out, err := os.Create(outfile)
	if err != nil {
		return err
	}
	if err := WriteBfac(out, rdr, bfac); err != nil {
		out.Close()
		return errorName(outfile, err)
	}
	return out.Close()
}
