// 19 Oct 2026

package hydro

import (
	"fmt"

	"github.com/andrew-torda/biohub/pdb"
	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Window  int
	AttFile string // chimera attribute file
	RawSeq  bool   // the argument is a sequence, not a pdb file
	Strict  bool
	LogFile string
}

// getSeq returns the sequence and where each residue sits. A raw
// sequence is numbered from one, with no chain.
func getSeq(flags *CmdFlag, arg string) ([]byte, []cmmn.ResKey, error) {
	if flags.RawSeq {
		keys := make([]cmmn.ResKey, len(arg))
		for i := range keys {
			keys[i] = cmmn.ResKey{ChainID: ' ', ResNum: i + 1}
		}
		return []byte(arg), keys, nil
	}
	logger, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return nil, nil, err
	}
	atoms, _, err := pdb.ReadAtoms(arg, &pdb.Options{Strict: flags.Strict, Log: logger})
	if err != nil {
		return nil, nil, err
	}
	seq, keys := pdb.SeqKeys(atoms)
	return seq, keys, nil
}

// Mymain writes the profile as residue number, residue and score.
func Mymain(flags *CmdFlag, arg, outfile string) error {
	seq, keys, err := getSeq(flags, arg)
	if err != nil {
		return err
	}
	scores, err := Profile(seq, flags.Window)
	if err != nil {
		return err
	}
	fp, err := common.OpenOut(outfile)
	if err != nil {
		return err
	}
	fmt.Fprintf(fp, "# window %d, %d residues\n", flags.Window, len(seq))
	for i, s := range scores {
		if _, err := fmt.Fprintf(fp, "%d %c %.3f\n", keys[i].ResNum, seq[i], s); err != nil {
			fp.Close()
			return err
		}
	}
	if err := fp.Close(); err != nil {
		return err
	}
	if flags.AttFile != "" {
		vals := make([]common.ResVal, len(scores))
		for i, s := range scores {
			vals[i] = common.ResVal{Chain: keys[i].ChainID, ResNum: keys[i].ResNum, Val: s}
		}
		return common.WrtAttFile(flags.AttFile, "hydropathy", vals)
	}
	return nil
}
