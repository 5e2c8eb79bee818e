// 19 Oct 2026

package protprop

import (
	"github.com/andrew-torda/biohub/pdb"
	"github.com/andrew-torda/biohub/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	RawSeq  bool // the argument is a sequence, not a pdb file
	Strict  bool
	LogFile string
}

// getSeq either takes arg as the sequence or reads it from a pdb file.
func getSeq(flags *CmdFlag, arg string) ([]byte, error) {
	if flags.RawSeq {
		return []byte(arg), nil
	}
	logger, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return nil, err
	}
	return pdb.ReadSeq(arg, &pdb.Options{Strict: flags.Strict, Log: logger})
}

// Mymain gets a sequence and writes the property report.
func Mymain(flags *CmdFlag, arg, outfile string) error {
	seq, err := getSeq(flags, arg)
	if err != nil {
		return err
	}
	props, err := Calc(seq)
	if err != nil {
		return err
	}
	fp, err := common.OpenOut(outfile)
	if err != nil {
		return err
	}
	if err := props.Write(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
