// Package protscan reads every PDB file under a directory with a few
// goroutines and writes one line per file to a csv file. It is for
// checking the reader against a local copy of the PDB and seeing how
// fast it goes.
package protscan

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/andrew-torda/prot3d/brokenio"
	"github.com/andrew-torda/prot3d/pdb"
	"github.com/andrew-torda/prot3d/pdb/metrics"
	"github.com/andrew-torda/prot3d/pdb/protein"
	"github.com/andrew-torda/prot3d/pdb/zwrap"
)

const nReaderDflt = 3

// CmdFlag holds the command line options.
type CmdFlag struct {
	NReader  int     // reader goroutines
	MaxFiles int     // stop after this many, 0 for all
	Broken   float32 // probability of a read failing, for testing
	LogFile  string
	Metrics  string
	CPUProf  string
}

// result is one line of output.
type result struct {
	path  string
	s     *protein.Structure
	nbyte int64
	err   error
}

var header = []string{"file", "id", "atoms", "residues", "chains", "heteroatoms", "bonds", "resolution", "error"}

func (r result) record() []string {
	if r.err != nil {
		return []string{r.path, "", "", "", "", "", "", "", r.err.Error()}
	}
	s := r.s
	return []string{r.path, s.IDCode,
		strconv.Itoa(s.NAtoms()), strconv.Itoa(s.NAAs()), strconv.Itoa(s.NChains()),
		strconv.Itoa(s.NHetAtoms()), strconv.Itoa(s.NBonds()),
		strconv.FormatFloat(s.Quality().Resolution, 'f', 2, 64), ""}
}

// wanted says if a file name looks like PDB coordinates.
func wanted(name string) bool {
	name = strings.ToLower(strings.TrimSuffix(name, ".gz"))
	return strings.HasSuffix(name, ".pdb") || strings.HasSuffix(name, ".ent")
}

// listFiles sends file names to ch and closes it.
func listFiles(root string, maxFiles int, ch chan<- string) error {
	defer close(ch)
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !wanted(d.Name()) {
			return nil
		}
		if maxFiles > 0 && n >= maxFiles {
			return filepath.SkipAll
		}
		ch <- path
		n++
		return nil
	})
	return err
}

// readBroken is pdb.ReadProtein with a reader that fails on purpose.
func readBroken(path string, prob float32, seed int64, outlog *log.Logger) (*protein.Structure, error) {
	rdr, err := zwrap.Open(path)
	if err != nil {
		return nil, err
	}
	brdr := brokenio.NewReader(rdr)
	brdr.SetSeed(seed)
	brdr.SetProbFail(prob)
	defer brdr.Close()
	s, err := protein.Parse(brdr, protein.WithLogger(outlog), protein.WithPath(path))
	metrics.Parse(err, 0)
	return s, err
}

// readFiles takes file names from a channel and reads each one.
func readFiles(ch <-chan string, res chan<- result, wg *sync.WaitGroup, flags *CmdFlag, outlog *log.Logger) {
	defer wg.Done()
	for path := range ch {
		r := result{path: path}
		if fi, err := os.Stat(path); err == nil {
			r.nbyte = fi.Size()
		}
		if flags.Broken > 0 {
			r.s, r.err = readBroken(path, flags.Broken, r.nbyte, outlog)
		} else {
			r.s, r.err = pdb.ReadProtein(path, "", protein.WithLogger(outlog))
		}
		res <- r
	}
}

// scan reads everything under root and returns the results sorted by
// file name.
func scan(root string, flags *CmdFlag, outlog *log.Logger) ([]result, error) {
	nReader := flags.NReader
	if nReader < 1 {
		nReader = nReaderDflt
	}
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}
	c := make(chan string, 200)
	res := make(chan result)
	walkErr := make(chan error, 1)
	go func() { walkErr <- listFiles(root, flags.MaxFiles, c) }()

	var wg sync.WaitGroup
	for i := 0; i < nReader; i++ {
		wg.Add(1)
		go readFiles(c, res, &wg, flags, outlog)
	}
	go func() {
		wg.Wait()
		close(res)
	}()
	var all []result
	for r := range res {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].path < all[j].path })
	return all, <-walkErr
}

func writeCSV(w io.Writer, all []result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range all {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Mymain scans root and writes a csv file to outfile, or standard
// output for "" or "-". Files which cannot be read are listed with their
// error and are not an error for Mymain.
func Mymain(flags *CmdFlag, root, outfile string) error {
	if flags.CPUProf != "" {
		fprof, err := os.Create(flags.CPUProf)
		if err != nil {
			return err
		}
		defer fprof.Close()
		if err := pprof.StartCPUProfile(fprof); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	outlog, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	all, err := scan(root, flags, outlog)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}
	var nbyte int64
	nfail := 0
	for _, r := range all {
		nbyte += r.nbyte
		if r.err != nil {
			nfail++
		}
	}
	const mb = 1024 * 1024
	outlog.Printf("Totals nbyte %.2f Mb nfiles %d failed %d", float32(nbyte)/mb, len(all), nfail)

	var fp io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer f.Close()
		fp = f
	}
	if err := writeCSV(fp, all); err != nil {
		return err
	}
	if flags.Metrics != "" {
		return metrics.WriteFile(flags.Metrics)
	}
	return nil
}
