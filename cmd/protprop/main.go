// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/biohub/pkg/common"
	"github.com/andrew-torda/biohub/pkg/protprop"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] pdbfile|sequence")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags protprop.CmdFlag
	var outfile string
	flag.BoolVar(&flags.RawSeq, "s", false, "argument is a sequence, not a file")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.Strict, "strict", false, "stop on broken atom records")
	flag.StringVar(&flags.LogFile, "log", "stderr", "where to log broken records")
	flag.Usage = func() { usage() }
	flag.Parse()
	if flag.NArg() != 1 {
		os.Exit(usage())
	}

	if err := protprop.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
