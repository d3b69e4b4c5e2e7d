package protein

import (
	"github.com/andrew-torda/prot3d/pdb/cmmn"
	"github.com/andrew-torda/prot3d/pdb/elem"
	"github.com/andrew-torda/prot3d/pdb/geom"
)

// bondTol multiplies the sum of covalent radii to give the longest
// distance we call a bond.
const bondTol = 1.15

// backbone pairs are bonded from their names alone. Distances do not
// matter.
var backbone = map[[2]string]bool{
	{"N", "CA"}:  true,
	{"CA", "C"}:  true,
	{"C", "O"}:   true,
	{"C", "OXT"}: true,
	{"CA", "CB"}: true,
}

func isBackbonePair(a, b string) bool {
	return backbone[[2]string{a, b}] || backbone[[2]string{b, a}]
}

// addAtom puts an atom in a residue and notes the backbone atoms. With
// alternate conformations there can be more than one N or C.
func (ar *arena) addAtom(rid resID, aid atomID) {
	r := ar.residues[rid]
	a := ar.atoms[aid]
	a.res = rid
	r.atoms = append(r.atoms, aid)
	switch a.Name {
	case "N":
		r.ns = append(r.ns, aid)
	case "C":
		r.cs = append(r.cs, aid)
	}
}

// bonded decides if two atoms of one residue are bonded, given
// their distance.
func bonded(a, b *Atom, d float32) bool {
	if !sameConf(a.AltLoc, b.AltLoc) {
		return false
	}
	if isBackbonePair(a.Name, b.Name) {
		return true
	}
	if a.Sym == "H" && b.Sym == "H" {
		return false
	}
	return geom.Covalent(d, elem.CovRad(a.Sym)+elem.CovRad(b.Sym), bondTol)
}

// setBonds throws away the residue's bonds and works them out again,
// so calling it twice gives the same answer. The peptide bonds to the
// neighbours are included if the atoms are there. Atoms of different
// alternate conformations are never bonded.
func (ar *arena) setBonds(rid resID) {
	r := ar.residues[rid]
	r.bonds = make(bondSet)
	xyz := make([]cmmn.Xyz, len(r.atoms))
	for i, aid := range r.atoms {
		xyz[i] = ar.atoms[aid].Xyz
	}
	dmat := geom.DistMat(xyz)
	for i := range r.atoms {
		ai := ar.atoms[r.atoms[i]]
		for j := i + 1; j < len(r.atoms); j++ {
			if bonded(ai, ar.atoms[r.atoms[j]], dmat.Mat[i][j]) {
				r.bonds.add(r.atoms[i], r.atoms[j])
			}
		}
	}
	if p := ar.residue(r.prev); p != nil {
		ar.peptide(r.bonds, p.cs, r.ns)
	}
	if nx := ar.residue(r.next); nx != nil {
		ar.peptide(r.bonds, r.cs, nx.ns)
	}
}

// peptide bonds carbonyl carbons to the next residue's nitrogens.
func (ar *arena) peptide(bs bondSet, cs, ns []atomID) {
	for _, c := range cs {
		for _, n := range ns {
			if sameConf(ar.atoms[c].AltLoc, ar.atoms[n].AltLoc) {
				bs.add(c, n)
			}
		}
	}
}

// removeAtom takes an atom out of its residue.
func (ar *arena) removeAtom(aid atomID) {
	rid := ar.atoms[aid].res
	if rid == none {
		return
	}
	r := ar.residues[rid]
	drop := func(ids []atomID) []atomID {
		for i, o := range ids {
			if o == aid {
				return append(ids[:i], ids[i+1:]...)
			}
		}
		return ids
	}
	r.atoms = drop(r.atoms)
	r.ns = drop(r.ns)
	r.cs = drop(r.cs)
	r.bonds.remove(aid)
}
