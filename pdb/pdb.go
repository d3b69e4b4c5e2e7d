// Package pdb is the upper level for reading protein coordinates.
// Decide if a file is compressed or not, and what format we are going
// to read. Then call the PDB format reader in package protein. Structures
// can also come from the network through a fetch.Fetcher.
package pdb

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/prot3d/pdb/fetch"
	"github.com/andrew-torda/prot3d/pdb/metrics"
	"github.com/andrew-torda/prot3d/pdb/protein"
	"github.com/andrew-torda/prot3d/pdb/zwrap"
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

// ErrMmcif is returned for files which look like mmCIF. We only read the
// old fixed column format.
var ErrMmcif = errors.New("mmCIF format is not read")

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return unkFmt, err
	}
	defer fp.Close()

	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return unkFmt, fmt.Errorf("reading %s: %w", fname, err)
	}

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return mmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return oldFmt, nil
			}
		}
	}
	return unkFmt, errors.New(fname + ": cannot recognise format")
}

// oldOrMmcif decides what format we will use.
// Maybe it uses the file name or maybe it peeks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func oldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(strings.ReplaceAll(fname, "\\", "/"))
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return oldFmt, nil
		} else if strings.Contains(s, "cif") {
			return mmcifFmt, nil
		}
	}
	return lookInFile(fname)
}

// LogWhere decides where to send output. "" throws it away, "stdout"
// is standard output and anything else is a file we append to.
func LogWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("creating log file: %w", err)
		}
	}
	return log.New(iowriter, "", log.Lshortfile), nil
}

// ReadProtein reads a local PDB file, which may be gzipped. Chatter
// from the parse goes wherever LogWhere(outinfo) says.
func ReadProtein(fname string, outinfo string, opts ...protein.Option) (*protein.Structure, error) {
	outlog, err := LogWhere(outinfo)
	if err != nil {
		return nil, err
	}
	s, err := readProtein(fname, outlog, opts)
	natoms := 0
	if err == nil {
		natoms = s.NAtoms()
	}
	metrics.Parse(err, natoms)
	return s, err
}

func readProtein(fname string, outlog *log.Logger, opts []protein.Option) (*protein.Structure, error) {
	typ, err := oldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	if typ == mmcifFmt {
		return nil, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	opts = append([]protein.Option{protein.WithLogger(outlog), protein.WithPath(fname)}, opts...)
	s, err := protein.Parse(rdr, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// FetchProtein gets a structure by its four character code and parses it.
func FetchProtein(ctx context.Context, f fetch.Fetcher, code string, opts ...protein.Option) (*protein.Structure, error) {
	data, err := f.Fetch(ctx, code)
	if err != nil {
		return nil, err
	}
	rdr, err := zwrap.FromBytes(data)
	if err != nil {
		metrics.Parse(err, 0)
		return nil, fmt.Errorf("%s: %w", code, err)
	}
	defer rdr.Close()
	opts = append([]protein.Option{protein.WithPath(code)}, opts...)
	s, err := protein.Parse(rdr, opts...)
	if err != nil {
		metrics.Parse(err, 0)
		return nil, fmt.Errorf("%s: %w", code, err)
	}
	metrics.Parse(nil, s.NAtoms())
	return s, nil
}
