// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, map it into memory and
// pull out the ATOM and HETATM records.

package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pdb/zwrap"
	"github.com/edsrzf/mmap-go"
	"gonum.org/v1/gonum/spatial/r3"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrShort  = Error("record too short")
	ErrNumber = Error("bad number")
	ErrMmcif  = Error("mmcif format is not read, only old pdb format")
	ErrIsDir  = Error("is a directory")
)

const maxLine = 64 * 1024 // Longer lines than this are broken files

// LineError is a broken ATOM or HETATM record.
type LineError struct {
	Line int    // line number, counting from 1
	Text string // the record
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// Options are the choices for reading. A nil *Options is fine and
// means skip broken lines quietly.
type Options struct {
	Strict bool        // stop on the first broken record
	Log    *log.Logger // where to complain about skipped records
}

// errorName sticks a problem causing filename on an error message
func errorName(fname string, e error) error {
	return fmt.Errorf("working on \"%s\": %w", fname, e)
}

// LogWhere decides where to send diagnostic output.
// If outinfo is "", it will be trashed. If outinfo is "stdout" or
// "stderr", we write there. Anything else is a file we append to.
func LogWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	}
	prefix := ""
	return log.New(iowriter, prefix, log.Lshortfile), nil
}

// looksMmcif uses the file name to spot mmcif files. We cannot use
// filepath.Ext, since it will return .gz if we feed it a.cif.gz.
func looksMmcif(fname string) bool {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return false
	}
	s = strings.ToLower(s[i+1:]) // change .cif.gz to cif.gz
	return strings.Contains(s, "cif")
}

// parseAtom turns one record into an atom. The caller has checked
// that it is an ATOM or HETATM line.
func parseAtom(line []byte, het bool) (cmmn.Atom, error) {
	var a cmmn.Atom
	if len(line) < minLen {
		return a, fmt.Errorf("%w, %d columns", ErrShort, len(line))
	}
	var err error
	if a.ResNum, err = cols.resNum.integer(line, "residue number"); err != nil {
		return a, err
	}
	var xyz r3.Vec
	if xyz.X, err = cols.x.float(line, "x"); err != nil {
		return a, err
	}
	if xyz.Y, err = cols.y.float(line, "y"); err != nil {
		return a, err
	}
	if xyz.Z, err = cols.z.float(line, "z"); err != nil {
		return a, err
	}
	a.Xyz = xyz
	if serial, err := cols.serial.integer(line, "serial"); err == nil {
		a.Serial = serial // big files overflow this field, so it is
	} //                   not fatal if it is rubbish
	a.Name = cols.name.str(line)
	a.ResName = cols.resName.str(line)
	a.ChainID = line[cols.chain.start]
	a.Element = element(line)
	a.Het = het
	return a, nil
}

// ParseAtoms reads pdb text and returns the atoms in file order and
// the number of broken records which were skipped.
// With opts.Strict, the first broken record stops everything and we
// return a *LineError and no atoms.
func ParseAtoms(rdr io.Reader, opts *Options) ([]cmmn.Atom, int, error) {
	if opts == nil {
		opts = &Options{}
	}
	outlog := opts.Log
	if outlog == nil {
		outlog = log.New(io.Discard, "", 0)
	}
	var atoms []cmmn.Atom
	var nSkip int
	scnnr := bufio.NewScanner(rdr)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	for lineNo := 1; scnnr.Scan(); lineNo++ {
		line := bytes.TrimRight(scnnr.Bytes(), "\r")
		het, ok := recordTag(line)
		if !ok {
			continue
		}
		a, err := parseAtom(line, het)
		if err != nil {
			le := &LineError{Line: lineNo, Text: string(line), Err: err}
			if opts.Strict {
				return nil, nSkip, le
			}
			outlog.Println("skipping", le)
			nSkip++
			continue
		}
		atoms = append(atoms, a)
	}
	if err := scnnr.Err(); err != nil {
		return nil, nSkip, err
	}
	return atoms, nSkip, nil
}

// ReadAtoms maps a pdb file (maybe gzipped) into memory and parses
// it. A file which cannot be opened gives no atoms and an error which
// wraps the one from os, so errors.Is(err, fs.ErrNotExist) works.
// An empty file is not an error. It just has no atoms.
func ReadAtoms(fname string, opts *Options) ([]cmmn.Atom, int, error) {
	if looksMmcif(fname) {
		return nil, 0, errorName(fname, ErrMmcif)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, 0, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, 0, errorName(fname, err)
	}
	if fi.IsDir() {
		return nil, 0, errorName(fname, ErrIsDir)
	}
	if fi.Size() == 0 { // mmap does not like empty files
		return nil, 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, 0, errorName(fname, err)
	}
	defer mm.Unmap()

	var rdr io.Reader = bytes.NewReader(mm)
	if zwrap.IsGzip(mm) {
		z, err := zwrap.Wrap(io.NopCloser(rdr))
		if err != nil {
			return nil, 0, errorName(fname, err)
		}
		defer z.Close()
		rdr = z
	}
	atoms, nSkip, err := ParseAtoms(rdr, opts)
	if err != nil {
		return nil, nSkip, errorName(fname, err)
	}
	return atoms, nSkip, nil
}
