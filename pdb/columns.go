package pdb

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// span is a half open range of columns, counting from zero.
type span struct{ start, end int }

// cols is the layout of ATOM and HETATM records. This is the only
// place where column numbers appear.
var cols = struct {
	tag, serial, name, resName, chain, resNum, x, y, z, bfac, element, elemAlt span
}{
	tag:     span{0, 6},
	serial:  span{6, 11},
	name:    span{12, 16},
	resName: span{17, 20},
	chain:   span{21, 22},
	resNum:  span{22, 26},
	x:       span{30, 38},
	y:       span{38, 46},
	z:       span{46, 54},
	bfac:    span{60, 66},
	element: span{76, 78},
	elemAlt: span{12, 14},
}

// minLen is the shortest record we accept. It ends with the z coordinate.
var minLen = cols.z.end

// get returns the columns of the span, or as much of them as the
// line has. It is only for optional fields.
func (s span) get(line []byte) []byte {
	if s.start >= len(line) {
		return nil
	}
	end := s.end
	if end > len(line) {
		end = len(line)
	}
	return line[s.start:end]
}

// str is get, trimmed and turned into a string.
func (s span) str(line []byte) string {
	return string(bytes.TrimSpace(s.get(line)))
}

// float reads a required floating point field. The caller has
// already checked the line is long enough.
func (s span) float(line []byte, field string) (float64, error) {
	t := s.str(line)
	x, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w in %s field %q", ErrNumber, field, t)
	}
	return x, nil
}

// integer reads an integer field.
func (s span) integer(line []byte, field string) (int, error) {
	t := s.str(line)
	i, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w in %s field %q", ErrNumber, field, t)
	}
	return i, nil
}

// recordTag says if a line is an atom record and if it is a HETATM.
func recordTag(line []byte) (het, ok bool) {
	switch string(bytes.TrimSpace(cols.tag.get(line))) {
	case "ATOM":
		return false, true
	case "HETATM":
		return true, true
	}
	return false, false
}

// element comes from its own columns, but many files leave them
// blank, so then we guess from the start of the atom name.
func element(line []byte) string {
	if e := cols.element.str(line); e != "" {
		return strings.ToUpper(e)
	}
	return strings.ToUpper(cols.elemAlt.str(line))
}
