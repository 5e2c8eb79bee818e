// 29 Apr 2020

// Package common has the bits and pieces shared by the commands:
// exit codes, output files and temporary files for testing.
package common

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// a fakecloser is a wrapper around a io.Writer which turns it into
// a WriteCloser. We do not want to close standard output.
type fakecloser struct {
	io.Writer
}

func (fakecloser) Close() error { return nil }

// WarnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func WarnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// OpenOut gives a writer for results. An empty name or "-" means
// standard output, which will not really be closed.
func OpenOut(fname string) (io.WriteCloser, error) {
	if fname == "" || fname == "-" {
		return fakecloser{os.Stdout}, nil
	}
	WarnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	return fp, nil
}

// ResVal is one per-residue number for an attribute file.
type ResVal struct {
	Chain  byte
	ResNum int
	Val    float64
}

// WrtAtt writes per-residue numbers to w in the format chimera wants
// for attribute files.
func WrtAtt(w io.Writer, attname string, vals []ResVal) error {
	head := "\nattribute: " + attname + "\nmatch mode: 1-to-1\nrecipient: residues"
	if _, err := fmt.Fprintln(w, "#", time.Now().Format(time.RFC1123), head); err != nil {
		return err
	}
	for _, v := range vals {
		resSpec := fmt.Sprintf(":%d", v.ResNum)
		if v.Chain != ' ' && v.Chain != 0 {
			resSpec += "." + string(v.Chain)
		}
		if _, err := fmt.Fprintf(w, "\t%s\t%#g\n", resSpec, v.Val); err != nil {
			return err
		}
	}
	return nil
}

// WrtAttFile is WrtAtt, but opens and closes the file for you.
func WrtAttFile(fname, attname string, vals []ResVal) error {
	fp, err := OpenOut(fname)
	if err != nil {
		return err
	}
	if err := WrtAtt(fp, attname, vals); err != nil {
		fp.Close()
		return fmt.Errorf("attribute file %v: %w", fname, err)
	}
	return fp.Close()
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
