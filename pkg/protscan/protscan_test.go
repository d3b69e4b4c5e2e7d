package protscan

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pdbTree makes a directory like the divided PDB layout with copies of
// the test files and some things which should be ignored.
func pdbTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	src := "../../pdb/testdata/"
	files := map[string]string{
		"ab/pdb1abc.ent":    src + "peedeebee1",
		"ab/pdb2abc.ent.gz": src + "dipeptide.gz",
		"cd/3abc.pdb":       src + "peedeebee2",
		"cd/readme.txt":     src + "peedeebee1",
		"cd/4abc.cif.gz":    src + "ememcif1.gz",
	}
	for dst, from := range files {
		b, err := os.ReadFile(from)
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.Dir(dst)), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dst), b, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "cd", "5abc.pdb"), []byte("HEADER\nATOM  bad\n"), 0644))
	return root
}

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	recs, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestScan(t *testing.T) {
	root := pdbTree(t)
	outfile := filepath.Join(t.TempDir(), "scan.csv")
	require.NoError(t, Mymain(&CmdFlag{NReader: 2}, root, outfile))
	b, err := os.ReadFile(outfile)
	require.NoError(t, err)
	recs := readCSV(t, b)
	require.Len(t, recs, 5)
	assert.Equal(t, header, recs[0])

	assert.Equal(t, filepath.Join(root, "ab", "pdb1abc.ent"), recs[1][0])
	assert.Equal(t, []string{"1abc", "10", "2", "1", "0", "9", "-1.00", ""}, recs[1][1:])
	assert.Equal(t, "10", recs[2][2])
	assert.Equal(t, "1.80", recs[3][7])
	assert.Equal(t, filepath.Join(root, "cd", "5abc.pdb"), recs[4][0])
	assert.NotEmpty(t, recs[4][8])
}

func TestMaxFiles(t *testing.T) {
	all, err := scan(pdbTree(t), &CmdFlag{MaxFiles: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBroken(t *testing.T) {
	all, err := scan(pdbTree(t), &CmdFlag{Broken: 1}, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, r := range all {
		assert.Error(t, r.err, r.path)
	}
}

func TestNoDir(t *testing.T) {
	err := Mymain(&CmdFlag{}, filepath.Join(t.TempDir(), "missing"), "")
	assert.Error(t, err)
}
