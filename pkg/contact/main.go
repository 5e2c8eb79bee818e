// 19 Oct 2026

package contact

import (
	"context"
	"fmt"
	"os"

	"github.com/andrew-torda/biohub/pdb"
	"github.com/andrew-torda/biohub/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Threshold float64
	AllAtom   bool // closest atoms instead of alpha carbons
	NWorker   int
	Strict    bool
	LogFile   string
}

// Mymain reads a pdb file and writes out one line per contact.
func Mymain(ctx context.Context, flags *CmdFlag, infile, outfile string) error {
	logger, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	atoms, nSkip, err := pdb.ReadAtoms(infile, &pdb.Options{Strict: flags.Strict, Log: logger})
	if err != nil {
		return err
	}
	if nSkip > 0 {
		fmt.Fprintln(os.Stderr, "skipped", nSkip, "broken records in", infile)
	}
	opts := Options{Threshold: flags.Threshold, NWorker: flags.NWorker}
	if flags.AllAtom {
		opts.Policy = AllAtom
	}
	contacts, err := Find(ctx, atoms, &opts)
	if err != nil {
		return err
	}

	fp, err := common.OpenOut(outfile)
	if err != nil {
		return err
	}
	fmt.Fprintf(fp, "# %d contacts, %v, threshold %.2f\n", len(contacts), opts.Policy, opts.Threshold)
	fmt.Fprintln(fp, "# chain res1 res2 dist")
	for _, c := range contacts {
		if _, err := fmt.Fprintf(fp, "%c %d %d %.3f\n", c.Res1.ChainID,
			c.Res1.ResNum, c.Res2.ResNum, c.Dist); err != nil {
			fp.Close()
			return err
		}
	}
	return fp.Close()
}
