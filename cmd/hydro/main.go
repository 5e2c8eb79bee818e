// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/biohub/pkg/common"
	"github.com/andrew-torda/biohub/pkg/hydro"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] pdbfile|sequence")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags hydro.CmdFlag
	var outfile string
	flag.IntVar(&flags.Window, "w", hydro.DfltWindow, "window size, odd")
	flag.StringVar(&flags.AttFile, "a", "", "chimera attribute file")
	flag.BoolVar(&flags.RawSeq, "s", false, "argument is a sequence, not a file")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.Strict, "strict", false, "stop on broken atom records")
	flag.StringVar(&flags.LogFile, "log", "stderr", "where to log broken records")
	flag.Usage = func() { usage() }
	flag.Parse()
	if flag.NArg() != 1 {
		os.Exit(usage())
	}
	if flags.Window < 1 || flags.Window%2 == 0 {
		fmt.Fprintln(os.Stderr, "window must be odd and positive, not", flags.Window)
		os.Exit(usage())
	}

	if err := hydro.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
