package geom_test

import (
	"testing"

	"github.com/andrew-torda/prot3d/pdb/cmmn"
	. "github.com/andrew-torda/prot3d/pdb/geom"
)

func TestDistMat(t *testing.T) {
	xyz := []cmmn.Xyz{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}}
	dmat := DistMat(xyz)
	nrow, ncol := dmat.Size()
	if nrow != 3 || ncol != 3 {
		t.Fatalf("matrix size %d x %d", nrow, ncol)
	}
	want := [][]float32{{0, 1, 2}, {1, 0, 2.236068}, {2, 2.236068, 0}}
	for i := range want {
		for j := range want[i] {
			d := dmat.Mat[i][j] - want[i][j]
			if d > 1e-5 || d < -1e-5 {
				t.Errorf("dmat[%d][%d] = %v wanted %v", i, j, dmat.Mat[i][j], want[i][j])
			}
		}
	}
}

func TestCovalent(t *testing.T) {
	if !Covalent(1.33, 1.47, 1.15) {
		t.Error("peptide C-N should be covalent")
	}
	if Covalent(2.5, 1.47, 1.15) {
		t.Error("2.5 A is not a C-N bond")
	}
	if Covalent(0, 1.47, 1.15) {
		t.Error("an atom is not bonded to itself")
	}
}
