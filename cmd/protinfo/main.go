// Summarise protein structures.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/prot3d/pkg/protinfo"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] file_or_code ...")
	flag.PrintDefaults()
}

func main() {
	var flags protinfo.CmdFlag
	var outfile string
	flag.StringVar(&flags.Chain, "c", "", "only this chain")
	flag.BoolVar(&flags.Fetch, "f", false, "arguments are PDB codes to fetch")
	flag.IntVar(&flags.Site, "s", 0, "web mirror to fetch from")
	flag.BoolVar(&flags.NoWater, "w", false, "strip water")
	flag.BoolVar(&flags.Validation, "v", false, "fetch validation report")
	flag.BoolVar(&flags.EDIA, "e", false, "fetch EDIA scores")
	flag.StringVar(&flags.LogFile, "l", "", "log file or stdout")
	flag.StringVar(&flags.Metrics, "m", "", "write metrics to file")
	flag.StringVar(&outfile, "o", "", "output file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(exitFailure)
	}
	if err := protinfo.Mymain(&flags, flag.Args(), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
