// 19 Oct 2026

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	. "github.com/andrew-torda/biohub/pkg/common"
	"github.com/andrew-torda/biohub/pkg/sasa"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] pdbfile")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags sasa.CmdFlag
	var outfile string
	flag.Float64Var(&flags.Probe, "p", sasa.DfltProbe, "probe radius")
	flag.IntVar(&flags.NPoint, "n", sasa.DfltNPoint, "points per atom")
	flag.IntVar(&flags.NWorker, "j", 0, "num worker goroutines, 0 for one per cpu")
	flag.StringVar(&flags.AttFile, "a", "", "chimera attribute file for residue areas")
	flag.StringVar(&flags.BfacFile, "b", "", "pdb file with areas as B-factors")
	flag.BoolVar(&flags.PerAtom, "atom", false, "list atoms, not residues")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.Strict, "strict", false, "stop on broken atom records")
	flag.StringVar(&flags.LogFile, "log", "stderr", "where to log broken records")
	flag.Usage = func() { usage() }
	flag.Parse()
	if flag.NArg() != 1 {
		os.Exit(usage())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := sasa.Mymain(ctx, &flags, flag.Arg(0), outfile)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
