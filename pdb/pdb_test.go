package pdb_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/prot3d/pdb"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

// TestBrokenFile checks if we get sensible error messages when we open
// something that is not a PDB file.
func TestBrokenFile(t *testing.T) {
	junk := filepath.Join(t.TempDir(), "junk")
	if err := os.WriteFile(junk, []byte("nothing\nto see\nhere\n"), 0644); err != nil {
		t.Fatal(err)
	}
	testfiles := []string{
		"/proc",
		"/does/not/exist",
		"/dev/zero",
		junk,
		"testdata/ememcif2",
	}
	for _, s := range testfiles {
		prot, err := ReadProtein(s, "")
		if prot != nil {
			t.Error("structure should be nil for", s)
		}
		if err == nil {
			t.Error("Did not get expected error on", s)
		}
	}
	if _, err := ReadProtein("testdata/ememcif1.gz", ""); !errors.Is(err, ErrMmcif) {
		t.Error("wanted ErrMmcif, got", err)
	}
}

var fnameTypes = []struct {
	fname string
	ftype byte
}{
	{"boo.mmcif", Mmcif_fmt},
	{"boo.mmcif.gz", Mmcif_fmt},
	{"a/b/c.ent", Old_fmt},
	{"a\\b.ent.gz", Old_fmt},
	{"a.pdb", Old_fmt},
	{"a.pdb.gz", Old_fmt},
	{"testdata/ememcif1.gz", Mmcif_fmt},
	{"testdata/ememcif2", Mmcif_fmt},
	{"testdata/peedeebee1", Old_fmt},
	{"testdata/peedeebee2", Old_fmt},
	{"testdata/dipeptide.gz", Old_fmt},
}

func TestOldOrMmcif(t *testing.T) {
	for _, f := range fnameTypes {
		r, err := OldOrMmcif(f.fname)
		if err != nil {
			t.Error("unexpected problem in ", t.Name(), err)
		}
		if r != f.ftype {
			t.Error("in", t.Name(), "working on ", f.fname)
		}
	}
}

func TestReadProtein(t *testing.T) {
	for _, fname := range []string{"testdata/peedeebee1", "testdata/peedeebee2", "testdata/dipeptide.gz"} {
		prot, err := ReadProtein(fname, "")
		require.NoError(t, err, fname)
		assert.Equal(t, 10, prot.NAtoms(), fname)
		assert.Equal(t, 2, prot.NAAs(), fname)
		assert.Equal(t, 9, prot.NBonds(), fname)
		assert.Equal(t, fname, prot.Path)
	}
	prot, err := ReadProtein("testdata/peedeebee2", "")
	require.NoError(t, err)
	assert.Equal(t, 1.8, prot.Quality().Resolution)
}

func TestLogWhere(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "info.log")
	_, err := ReadProtein("testdata/peedeebee1", logfile)
	require.NoError(t, err)
	b, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "10 atoms")

	_, err = LogWhere(filepath.Join(t.TempDir(), "no", "such", "dir"))
	assert.Error(t, err)
}

// memFetcher serves files from testdata by code.
type memFetcher map[string]string

func (m memFetcher) Fetch(_ context.Context, code string) ([]byte, error) {
	fname, ok := m[strings.ToLower(code)]
	if !ok {
		return nil, &perr.NotFoundError{ID: code, Source: "memory"}
	}
	return os.ReadFile(fname)
}

func TestFetchProtein(t *testing.T) {
	f := memFetcher{"1abc": "testdata/dipeptide.gz", "2abc": "testdata/peedeebee2"}
	ctx := context.Background()
	for _, code := range []string{"1abc", "2abc"} {
		prot, err := FetchProtein(ctx, f, code)
		require.NoError(t, err, code)
		assert.Equal(t, 10, prot.NAtoms())
		assert.Equal(t, code, prot.Path)
	}
	_, err := FetchProtein(ctx, f, "3abc")
	assert.ErrorIs(t, err, perr.ErrNotFound)
}
