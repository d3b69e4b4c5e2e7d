package protein

import (
	"sort"
)

// Structure is a protein, or one chain of it, read from a PDB file.
type Structure struct {
	IDCode         string // four letter code, lower case
	Classification string
	Path           string // where it was read from, if anybody told us
	ar             *arena
	atoms          map[int]atomID // by serial number
	residues       []resID        // in the order they were read
	chains         map[string][]resID
	chainOrder     []string
	het            map[atomID]HetEntry
	missAAs        []MissingResidue
	missAtoms      map[ResKey]MissingAtoms
	conf           []conf
	bonds          bondSet
	q              Quality
	metals         [2][]int // memo for FindMetal, indexed by transitionOnly
	metalsOk       [2]bool
}

// newStructure makes an empty structure and registers it with the arena.
func newStructure(ar *arena) *Structure {
	s := &Structure{
		ar:        ar,
		atoms:     make(map[int]atomID),
		chains:    make(map[string][]resID),
		het:       make(map[atomID]HetEntry),
		missAtoms: make(map[ResKey]MissingAtoms),
		bonds:     make(bondSet),
		q:         newQuality(),
	}
	ar.views = append(ar.views, s)
	return s
}

// NAtoms is the number of atoms, including heteroatoms.
func (s *Structure) NAtoms() int { return len(s.atoms) }

// NAAs counts amino acids. Alternate conformations of a residue are
// part of the one residue.
func (s *Structure) NAAs() int { return len(s.residues) }

// NHetAtoms is the number of atoms in the heteroatom table.
func (s *Structure) NHetAtoms() int { return len(s.het) }

// NChains is the number of chains.
func (s *Structure) NChains() int { return len(s.chainOrder) }

// ChainIDs are in the order the chains first appeared.
func (s *Structure) ChainIDs() []string {
	return append([]string(nil), s.chainOrder...)
}

// Chain returns the residues of a chain in sequence order, or nil.
func (s *Structure) Chain(id string) []*Residue {
	rids, ok := s.chains[id]
	if !ok {
		return nil
	}
	return s.resList(rids)
}

func (s *Structure) resList(rids []resID) []*Residue {
	ret := make([]*Residue, len(rids))
	for i, rid := range rids {
		ret[i] = s.ar.residues[rid]
	}
	return ret
}

// Residues returns every residue in the order they were read.
func (s *Structure) Residues() []*Residue { return s.resList(s.residues) }

// Conformations lists each alternate with partial occupancy once, in
// file order.
func (s *Structure) Conformations() []Conformation {
	ret := make([]Conformation, len(s.conf))
	for i, c := range s.conf {
		ret[i] = Conformation{Res: s.ar.residues[c.rid], AltLoc: c.alt, Occup: c.occup}
	}
	return ret
}

// HetAtoms returns the heteroatom table keyed by serial number.
func (s *Structure) HetAtoms() map[int]HetEntry {
	ret := make(map[int]HetEntry, len(s.het))
	for aid, e := range s.het {
		ret[s.ar.atoms[aid].Serial] = e
	}
	return ret
}

// MissingAAs are the residues from REMARK 465, in file order.
func (s *Structure) MissingAAs() []MissingResidue {
	return append([]MissingResidue(nil), s.missAAs...)
}

// MissingAtoms are the atoms from REMARK 470.
func (s *Structure) MissingAtoms() map[ResKey]MissingAtoms {
	ret := make(map[ResKey]MissingAtoms, len(s.missAtoms))
	for k, v := range s.missAtoms {
		v.Atoms = append([]MissingAtom(nil), v.Atoms...)
		ret[k] = v
	}
	return ret
}

// Quality returns a copy of the quality numbers.
func (s *Structure) Quality() Quality { return s.q }

// Serials lists every atom serial number in ascending order.
func (s *Structure) Serials() []int {
	ret := make([]int, 0, len(s.atoms))
	for serial := range s.atoms {
		ret = append(ret, serial)
	}
	sort.Ints(ret)
	return ret
}

// NBonds counts each bond once.
func (s *Structure) NBonds() int { return s.bonds.nEdge() }
