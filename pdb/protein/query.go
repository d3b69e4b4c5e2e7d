package protein

import (
	"errors"
	"sort"
	"strings"

	"github.com/andrew-torda/prot3d/pdb/elem"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

// ErrAmbiguousConf comes from BoundAAs for a heteroatom with no bonds
// which is only a placeholder for one of several alternate positions.
var ErrAmbiguousConf = errors.New("heteroatom is an alternate conformation without bonds")

func (s *Structure) lookup(serial int) (*Atom, atomID, error) {
	aid, ok := s.atoms[serial]
	if !ok {
		return nil, none, perr.BadAtom(serial)
	}
	return s.ar.atoms[aid], aid, nil
}

// Atom returns the atom with a serial number.
func (s *Structure) Atom(serial int) (*Atom, error) {
	a, _, err := s.lookup(serial)
	return a, err
}

// ResidueOf returns the residue an atom belongs to. isHet is true for
// heteroatoms which are not part of any residue, and then the residue
// is nil.
func (s *Structure) ResidueOf(serial int) (r *Residue, isHet bool, err error) {
	a, _, err := s.lookup(serial)
	if err != nil {
		return nil, false, err
	}
	if a.res == none {
		return nil, true, nil
	}
	return s.ar.residues[a.res], false, nil
}

// FindAtom returns the serial numbers of atoms of an element found in
// residues. Heteroatoms which are only in the heteroatom table are not
// searched.
func (s *Structure) FindAtom(sym string) []int {
	sym = elem.Normalise(sym)
	var ret []int
	for _, rid := range s.residues {
		for _, aid := range s.ar.residues[rid].atoms {
			if a := s.ar.atoms[aid]; a.Sym == sym {
				ret = append(ret, a.Serial)
			}
		}
	}
	sort.Ints(ret)
	return ret
}

// FindHetAtom returns the serial numbers of heteroatoms of an element.
func (s *Structure) FindHetAtom(sym string) []int {
	sym = elem.Normalise(sym)
	var ret []int
	for aid := range s.het {
		if a := s.ar.atoms[aid]; a.Sym == sym {
			ret = append(ret, a.Serial)
		}
	}
	sort.Ints(ret)
	return ret
}

// FindAA returns where a residue type occurs, like "HIS".
func (s *Structure) FindAA(code string) map[ResKey]struct{} {
	code = strings.ToUpper(code)
	ret := make(map[ResKey]struct{})
	for _, rid := range s.residues {
		if r := s.ar.residues[rid]; r.Code == code {
			ret[r.Key()] = struct{}{}
		}
	}
	return ret
}

// Bonded gives the serial numbers of the atoms bonded to an atom.
func (s *Structure) Bonded(serial int) ([]int, error) {
	_, aid, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	nbrs := s.bonds.neighbours(aid)
	ret := make([]int, len(nbrs))
	for i, b := range nbrs {
		ret[i] = s.ar.atoms[b].Serial
	}
	sort.Ints(ret)
	return ret, nil
}

// placeholder says if an atom without bonds is only marking one of
// several places a metal might be, like "AZN" or "BZN".
func placeholder(a *Atom) bool {
	sym := strings.ToUpper(a.Sym)
	return a.Name == "A"+sym || a.Name == "B"+sym || a.AltLoc != ' '
}

// BoundAAs returns the residues bonded to an atom, usually a ligand or
// a metal. The atom's own residue is left out. Each residue comes once,
// in chain and sequence order.
func (s *Structure) BoundAAs(serial int) ([]*Residue, error) {
	a, aid, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	nbrs := s.bonds.neighbours(aid)
	if len(nbrs) == 0 {
		if placeholder(a) {
			return nil, ErrAmbiguousConf
		}
		return nil, nil
	}
	seen := make(map[resID]bool)
	var ret []*Residue
	for _, b := range nbrs {
		rid := s.ar.atoms[b].res
		if rid == none || rid == a.res || seen[rid] {
			continue
		}
		seen[rid] = true
		ret = append(ret, s.ar.residues[rid])
	}
	s.sortResidues(ret)
	return ret, nil
}

func (s *Structure) sortResidues(rr []*Residue) {
	order := make(map[string]int, len(s.chainOrder))
	for i, c := range s.chainOrder {
		order[c] = i
	}
	sort.Slice(rr, func(i, j int) bool {
		a, b := rr[i], rr[j]
		if a.Chain != b.Chain {
			return order[a.Chain] < order[b.Chain]
		}
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		return a.ICode < b.ICode
	})
}

// FindMetal returns the serial numbers of metal heteroatoms, or only
// transition metals. Metals inside residues, like selenium in
// selenomethionine, are not metals here. The answer is remembered until
// atoms are stripped.
func (s *Structure) FindMetal(transitionOnly bool) []int {
	i := 0
	if transitionOnly {
		i = 1
	}
	if !s.metalsOk[i] {
		var ret []int
		for aid := range s.het {
			if a := s.ar.atoms[aid]; elem.IsMetal(a.Sym, transitionOnly) {
				ret = append(ret, a.Serial)
			}
		}
		sort.Ints(ret)
		s.metals[i] = ret
		s.metalsOk[i] = true
	}
	return append([]int(nil), s.metals[i]...)
}

func (s *Structure) forgetMetals() { s.metalsOk = [2]bool{} }

// ExtractChain returns a structure with only one chain, its
// heteroatoms and the bonds between them. The atoms and residues are
// shared with s, so stripping atoms from either one strips them from
// both.
func (s *Structure) ExtractChain(id string) (*Structure, error) {
	rids, ok := s.chains[id]
	if !ok {
		return nil, &perr.InvalidQueryError{What: "chain", Key: id}
	}
	c := newStructure(s.ar)
	c.IDCode, c.Classification, c.Path = s.IDCode, s.Classification, s.Path
	c.q = s.q
	c.chains[id] = append([]resID(nil), rids...)
	c.chainOrder = []string{id}
	for _, rid := range s.residues {
		if s.ar.residues[rid].Chain == id {
			c.residues = append(c.residues, rid)
		}
	}
	for _, cf := range s.conf {
		if s.ar.residues[cf.rid].Chain == id {
			c.conf = append(c.conf, cf)
		}
	}
	for serial, aid := range s.atoms {
		if s.chainOf(aid) == id {
			c.atoms[serial] = aid
		}
	}
	for aid, e := range s.het {
		if _, ok := c.atoms[s.ar.atoms[aid].Serial]; ok {
			c.het[aid] = e
		}
	}
	for _, m := range s.missAAs {
		if m.Chain == id {
			c.missAAs = append(c.missAAs, m)
		}
	}
	for k, m := range s.missAtoms {
		if k.Chain == id {
			c.missAtoms[k] = m
		}
	}
	c.bonds = s.bonds.filter(func(aid atomID) bool {
		_, ok := c.atoms[s.ar.atoms[aid].Serial]
		return ok
	})
	return c, nil
}

// chainOf says which chain an atom is in, from its residue or, for
// heteroatoms, from the heteroatom table.
func (s *Structure) chainOf(aid atomID) string {
	if rid := s.ar.atoms[aid].res; rid != none {
		return s.ar.residues[rid].Chain
	}
	return s.het[aid].Chain
}
