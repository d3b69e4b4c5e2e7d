// Distances within small groups of atoms, like the atoms of one residue.

package geom

import (
	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/prot3d/pdb/cmmn"
)

const mindist = 0.4 // closer than this is not a bond, it is a clash or a duplicate

// DistMat fills an n x n matrix with the distances between the points.
// The diagonal is zero.
func DistMat(xyz []cmmn.Xyz) *matrix.FMatrix2d {
	n := len(xyz)
	dmat := matrix.NewFMatrix2d(n, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := xyz[i].Dist(xyz[j])
			dmat.Mat[i][j] = d
			dmat.Mat[j][i] = d
		}
	}
	return dmat
}

// Covalent says if a distance d is short enough to be a bond between
// atoms whose radii add up to radsum, allowing a factor of tol.
func Covalent(d, radsum, tol float32) bool {
	return d > mindist && d <= radsum*tol
}
