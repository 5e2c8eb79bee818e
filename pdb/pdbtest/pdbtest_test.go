package pdbtest_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	. "github.com/andrew-torda/biohub/pdb/pdbtest"
)

// Check the columns against a line from a real pdb file.
func TestLine(t *testing.T) {
	r := Rec{Serial: 1, Name: "N", ResName: "MET", Chain: 'A', ResNum: 1,
		X: 27.340, Y: 24.430, Z: 2.614, Bfac: 9.67, Element: "N"}
	want := "ATOM      1  N   MET A   1      27.340  24.430   2.614  1.00  9.67           N  "
	if got := r.Line(); got != want {
		t.Errorf("\ngot  %q\nwant %q", got, want)
	}
	r.Het, r.Name, r.ResName = true, "ZN", "ZN"
	if got := r.Line(); !strings.HasPrefix(got, "HETATM    1  ZN   ZN A") {
		t.Errorf("het line %q", got)
	}
}

func TestBrknRdr(t *testing.T) {
	src := strings.NewReader("0123456789")
	b, err := io.ReadAll(NewReader(src, 4))
	if !errors.Is(err, ErrBroken) {
		t.Errorf("wanted ErrBroken got %v", err)
	}
	if string(b) != "0123" {
		t.Errorf("got %q before failure", b)
	}
}
