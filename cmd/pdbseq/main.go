// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/biohub/pkg/common"
	"github.com/andrew-torda/biohub/pkg/pdbseq"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.pdb [file.pdb ...]")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags pdbseq.CmdFlag
	var outfile string
	flag.IntVar(&flags.NReader, "r", pdbseq.NReaderDflt, "num reader goroutines")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.Strict, "strict", false, "stop on broken atom records")
	flag.StringVar(&flags.LogFile, "log", "", "where to log broken records")
	flag.Usage = func() { usage() }
	flag.Parse()
	if flag.NArg() < 1 {
		os.Exit(usage())
	}

	if err := pdbseq.Mymain(&flags, flag.Args(), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
