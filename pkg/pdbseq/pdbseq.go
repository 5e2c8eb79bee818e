// 19 Oct 2026

// Package pdbseq pulls sequences out of many pdb files at once.
package pdbseq

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/andrew-torda/biohub/pdb"
	"github.com/andrew-torda/biohub/pkg/common"
)

const NReaderDflt = 3 // Default number of reader goroutines

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	NReader int
	Strict  bool
	LogFile string
}

// Result is what we got from one file. Seq is empty if Err is set.
type Result struct {
	Fname string
	Seq   []byte
	NSkip int // broken records which were skipped
	Err   error
}

type job struct {
	ndx   int
	fname string
}

// readPdb reads one file and gets the sequence of its first chain.
func readPdb(fname string, opts *pdb.Options) Result {
	atoms, nSkip, err := pdb.ReadAtoms(fname, opts)
	if err != nil {
		return Result{Fname: fname, NSkip: nSkip, Err: err}
	}
	return Result{Fname: fname, Seq: pdb.SeqFromAtoms(atoms), NSkip: nSkip}
}

// readFiles takes jobs from a channel until it is closed. Each result
// goes into its own slot of res, so no locking is needed.
func readFiles(ch <-chan job, res []Result, wg *sync.WaitGroup, opts *pdb.Options) {
	defer wg.Done()
	for j := range ch {
		res[j.ndx] = readPdb(j.fname, opts)
	}
}

// ReadAll reads the files with nReader goroutines and returns the
// results in the same order as fnames.
func ReadAll(fnames []string, nReader int, opts *pdb.Options) []Result {
	if nReader < 1 {
		nReader = 1
	}
	res := make([]Result, len(fnames))
	c := make(chan job, len(fnames))
	for i, f := range fnames {
		c <- job{i, f}
	}
	close(c)
	var wg sync.WaitGroup
	for i := 0; i < nReader; i++ {
		wg.Add(1)
		go readFiles(c, res, &wg, opts)
	}
	wg.Wait()
	return res
}

// wrtResults writes one line per file that could be read and
// complains on stderr about the others. It returns the number of
// failures.
func wrtResults(w io.Writer, res []Result) (int, error) {
	nFail := 0
	for _, r := range res {
		if r.Err != nil {
			fmt.Fprintln(os.Stderr, r.Err)
			nFail++
			continue
		}
		if r.NSkip > 0 {
			fmt.Fprintln(os.Stderr, "skipped", r.NSkip, "broken records in", r.Fname)
		}
		if _, err := fmt.Fprintf(w, "%s %d %s\n", r.Fname, len(r.Seq), r.Seq); err != nil {
			return nFail, err
		}
	}
	return nFail, nil
}

// Mymain reads all the files and writes their sequences.
func Mymain(flags *CmdFlag, fnames []string, outfile string) error {
	logger, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	res := ReadAll(fnames, flags.NReader, &pdb.Options{Strict: flags.Strict, Log: logger})
	fp, err := common.OpenOut(outfile)
	if err != nil {
		return err
	}
	nFail, err := wrtResults(fp, res)
	if err != nil {
		fp.Close()
		return err
	}
	if err := fp.Close(); err != nil {
		return err
	}
	if nFail > 0 {
		return fmt.Errorf("%d of %d files could not be read", nFail, len(fnames))
	}
	return nil
}
