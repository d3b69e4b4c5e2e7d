package protein

import (
	"github.com/andrew-torda/prot3d/pdb/cmmn"
)

// atomID and resID are indices into the arena.
type atomID int32
type resID int32

const none = -1

// Atom is one atom from an ATOM or HETATM record.
type Atom struct {
	Serial   int    // serial number from the file, the public identity
	Sym      string // element, "Zn" not "ZN"
	Name     string // label like "CA" or "OG1"
	AltLoc   byte   // alternate location indicator, blank if none
	Xyz      cmmn.Xyz
	Occup    float32
	Tfactor  float32
	Charge   string
	Het      bool // read from a HETATM record
	Frozen   bool
	Score    float64 // quality score from a scoring service, like EDIA
	HasScore bool
	res      resID
}

// ResKey is the chain and sequence number of a residue.
type ResKey struct {
	Chain string
	Seq   int
}

// site is where a residue sits in a chain. It is the identity of a
// residue, so all alternate conformations of a residue share one record.
type site struct {
	chain string
	seq   int
	icode byte
}

// Residue is an amino acid. Atoms are kept in the order they were read,
// those of every alternate conformation included.
type Residue struct {
	Code   string  // three letter code
	Chain  string
	Seq    int
	ICode  byte    // insertion code
	AltLoc byte    // the alternate conformation in use, blank if there are none
	Occup  float32 // occupancy of the first atom read
	ar     *arena
	id     resID
	atoms  []atomID
	prev   resID
	next   resID
	ns, cs []atomID // backbone nitrogens and carbonyl carbons, one per conformation
	bonds  bondSet
}

// Conformation is one alternate placement of a residue: the atoms with
// one alternate location marker, or the whole residue if it has partial
// occupancy and no marker.
type Conformation struct {
	Res    *Residue
	AltLoc byte
	Occup  float32 // occupancy of its first atom
}

// conf is a Conformation inside the builder and the structure.
type conf struct {
	rid   resID
	alt   byte
	occup float32
}

// Key returns the chain and sequence number.
func (r *Residue) Key() ResKey { return ResKey{Chain: r.Chain, Seq: r.Seq} }

// sameConf says if atoms with two alternate location markers can be
// in one conformation.
func sameConf(a, b byte) bool { return a == ' ' || b == ' ' || a == b }

// inUse says if an atom belongs to the conformation the residue uses.
func (r *Residue) inUse(a *Atom) bool { return a.AltLoc == ' ' || a.AltLoc == r.AltLoc }

// NAtom is the number of atoms in the conformation in use.
func (r *Residue) NAtom() int { return len(r.Atoms()) }

// Atoms returns the atoms of the conformation in use, in file order.
func (r *Residue) Atoms() []*Atom {
	ret := make([]*Atom, 0, len(r.atoms))
	for _, id := range r.atoms {
		if a := r.ar.atoms[id]; r.inUse(a) {
			ret = append(ret, a)
		}
	}
	return ret
}

// Serials returns the serial numbers of Atoms.
func (r *Residue) Serials() []int {
	var ret []int
	for _, a := range r.Atoms() {
		ret = append(ret, a.Serial)
	}
	return ret
}

// AllSerials includes the atoms of alternate conformations which are
// not in use.
func (r *Residue) AllSerials() []int {
	ret := make([]int, len(r.atoms))
	for i, id := range r.atoms {
		ret[i] = r.ar.atoms[id].Serial
	}
	return ret
}

// Prev and Next are the neighbours in the chain, nil at the ends.
func (r *Residue) Prev() *Residue { return r.ar.residue(r.prev) }
func (r *Residue) Next() *Residue { return r.ar.residue(r.next) }

// HetEntry says which molecule and chain a heteroatom came from.
type HetEntry struct {
	Mol   string // like "HOH", "ZN", "HEM"
	Chain string
}

// MissingResidue is a residue listed in REMARK 465, with no coordinates.
type MissingResidue struct {
	Code  string
	Chain string
	Seq   int
	ICode byte
}

// MissingAtom is an atom listed in REMARK 470.
type MissingAtom struct {
	Sym  string
	Name string
}

// MissingAtoms are the atoms absent from one residue.
type MissingAtoms struct {
	Code  string
	Atoms []MissingAtom
}

// Values which say a quality number is unknown. They are deliberately
// out of range so nobody can mistake them for a real value.
const (
	NotParsed = -1   // never seen in the file
	NullR     = -100 // R value given as NULL
	NullRfree = 100  // Rfree given as NULL
)

// Quality holds the numbers describing how good the model is. The R values
// and resolution come from the file, the rest from validation reports.
type Quality struct {
	R                float64
	Rfree            float64
	Resolution       float64
	DataCompleteness float64
	RSRZ             float64 // percent RSRZ outliers
	TwinL            float64
	TwinL2           float64
}

func newQuality() Quality {
	return Quality{
		R:          NotParsed,
		Rfree:      NotParsed,
		Resolution: NotParsed,
		RSRZ:       100,
	}
}
