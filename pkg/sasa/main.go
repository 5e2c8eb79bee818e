// 19 Oct 2026

package sasa

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/biohub/pdb"
	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Probe    float64
	NPoint   int
	NWorker  int
	AttFile  string // chimera attribute file with per residue areas
	BfacFile string // copy of the input with areas in the B-factor column
	PerAtom  bool   // list every atom, not just residues
	Strict   bool   // stop on broken pdb records
	LogFile  string // where to complain about broken records
}

// wrtReport writes the total and then the residues (or atoms) in the
// order they appear in the file.
func wrtReport(w io.Writer, atoms []cmmn.Atom, res *Result, perAtom bool) error {
	if _, err := fmt.Fprintf(w, "# total SASA %.2f A^2, %d atoms, %d residues\n",
		res.Total, len(atoms), len(res.ResOrder)); err != nil {
		return err
	}
	if perAtom {
		fmt.Fprintln(w, "# serial name resname chain resnum sasa")
		for i := range atoms {
			a := &atoms[i]
			if _, err := fmt.Fprintf(w, "%d %s %s %c %d %.2f\n", a.Serial, a.Name,
				a.ResName, a.ChainID, a.ResNum, res.PerAtom[i]); err != nil {
				return err
			}
		}
		return nil
	}
	fmt.Fprintln(w, "# chain resnum resname sasa")
	for _, grp := range cmmn.GroupRes(atoms) {
		k := grp.Key
		if _, err := fmt.Fprintf(w, "%c %d %s %.2f\n", k.ChainID, k.ResNum,
			grp.ResName, res.PerRes[k]); err != nil {
			return err
		}
	}
	return nil
}

// Mymain reads a pdb file, calculates areas and writes them out.
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
	opts := Options{Probe: flags.Probe, NPoint: flags.NPoint, NWorker: flags.NWorker}
	res, err := Calc(ctx, atoms, &opts)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Fprintln(os.Stderr, "no atoms in", infile)
		return nil
	}

	fp, err := common.OpenOut(outfile)
	if err != nil {
		return err
	}
	if err := wrtReport(fp, atoms, res, flags.PerAtom); err != nil {
		fp.Close()
		return err
	}
	if err := fp.Close(); err != nil {
		return err
	}

	if flags.AttFile != "" {
		vals := make([]common.ResVal, len(res.ResOrder))
		for i, k := range res.ResOrder {
			vals[i] = common.ResVal{Chain: k.ChainID, ResNum: k.ResNum, Val: res.PerRes[k]}
		}
		if err := common.WrtAttFile(flags.AttFile, "sasa", vals); err != nil {
			return err
		}
	}
	if flags.BfacFile != "" {
		if err := pdb.WriteBfacFile(flags.BfacFile, infile, res.PerAtom); err != nil {
			return err
		}
	}
	return nil
}
