// 19 Oct 2026

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/andrew-torda/biohub/pkg/contact"
	. "github.com/andrew-torda/biohub/pkg/common"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] pdbfile")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags contact.CmdFlag
	var outfile string
	flag.Float64Var(&flags.Threshold, "t", contact.DfltThreshold, "distance threshold")
	flag.BoolVar(&flags.AllAtom, "all", false, "closest atoms instead of alpha carbons")
	flag.IntVar(&flags.NWorker, "n", 0, "num worker goroutines, 0 for one per cpu")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.Strict, "strict", false, "stop on broken atom records")
	flag.StringVar(&flags.LogFile, "log", "stderr", "where to log broken records")
	flag.Usage = func() { usage() }
	flag.Parse()
	if flag.NArg() != 1 {
		os.Exit(usage())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := contact.Mymain(ctx, &flags, flag.Arg(0), outfile)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
