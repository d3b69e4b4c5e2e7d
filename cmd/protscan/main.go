// Read a directory tree of PDB files.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/prot3d/pkg/protscan"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] directory [outfile]")
	flag.PrintDefaults()
}

func main() {
	var flags protscan.CmdFlag
	var outfile string
	var broken float64
	flag.IntVar(&flags.NReader, "r", 3, "num reader goroutines")
	flag.IntVar(&flags.MaxFiles, "d", 0, "max num files to read, 0 for all")
	flag.Float64Var(&broken, "b", 0, "probability of a broken read, for testing")
	flag.StringVar(&flags.LogFile, "l", "", "log file or stdout")
	flag.StringVar(&flags.Metrics, "m", "", "write metrics to file")
	flag.StringVar(&flags.CPUProf, "c", "", "write cpuprofile to file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(exitFailure)
	}
	if flag.NArg() == 2 {
		outfile = flag.Arg(1)
	}
	flags.Broken = float32(broken)
	if err := protscan.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
