package protein

import (
	"sort"
)

// Freeze marks atoms as frozen. If any serial number is unknown, nothing
// is changed.
func (s *Structure) Freeze(serials ...int) error {
	for _, serial := range serials {
		if _, _, err := s.lookup(serial); err != nil {
			return err
		}
	}
	for _, serial := range serials {
		s.ar.atoms[s.atoms[serial]].Frozen = true
	}
	return nil
}

// Frozen lists the serial numbers of frozen atoms.
func (s *Structure) Frozen() []int {
	var ret []int
	for serial, aid := range s.atoms {
		if s.ar.atoms[aid].Frozen {
			ret = append(ret, serial)
		}
	}
	sort.Ints(ret)
	return ret
}

// StripAtoms removes atoms from their residues, the heteroatom table,
// the bonds and the atom table. The atoms and residues are shared with
// the structure they were extracted from and any other chain extracted
// from it, so the atoms go from all of them. If any serial number is
// unknown, nothing is removed.
func (s *Structure) StripAtoms(serials ...int) error {
	aids := make([]atomID, len(serials))
	for i, serial := range serials {
		_, aid, err := s.lookup(serial)
		if err != nil {
			return err
		}
		aids[i] = aid
	}
	for _, aid := range aids {
		s.ar.strip(aid)
	}
	return nil
}

// strip removes an atom from its residue and from every structure.
func (ar *arena) strip(aid atomID) {
	ar.removeAtom(aid)
	serial := ar.atoms[aid].Serial
	for _, v := range ar.views {
		if id, ok := v.atoms[serial]; !ok || id != aid {
			continue
		}
		delete(v.het, aid)
		delete(v.atoms, serial)
		v.bonds.remove(aid)
		v.forgetMetals()
	}
}

// StripHetMol removes every heteroatom of one molecule type, like "HOH",
// and returns how many went.
func (s *Structure) StripHetMol(mol string) int {
	var serials []int
	for aid, e := range s.het {
		if e.Mol == mol {
			serials = append(serials, s.ar.atoms[aid].Serial)
		}
	}
	if len(serials) == 0 {
		return 0
	}
	sort.Ints(serials)
	_ = s.StripAtoms(serials...) // all known, cannot fail
	return len(serials)
}

// SetScores gives atoms a score, keyed by serial number. Scoring
// services often score only one of a pair of alternate atoms. So an atom
// with partial occupancy passes its score to the alternate next to it,
// serial + 1 or else serial - 1, if that atom has no score yet. Atoms
// are taken in serial order. If any serial number is unknown, nothing
// is set.
func (s *Structure) SetScores(scores map[int]float64) error {
	serials := make([]int, 0, len(scores))
	for serial := range scores {
		if _, _, err := s.lookup(serial); err != nil {
			return err
		}
		serials = append(serials, serial)
	}
	sort.Ints(serials)
	given := make(map[int]bool, len(scores))
	for _, serial := range serials {
		given[serial] = true
	}
	for _, serial := range serials {
		a := s.ar.atoms[s.atoms[serial]]
		a.Score, a.HasScore = scores[serial], true
		if a.Occup >= 1 {
			continue
		}
		for _, o := range []int{serial + 1, serial - 1} {
			if given[o] {
				continue
			}
			if b, _, err := s.lookup(o); err == nil && b.Name == a.Name && b.Occup < 1 {
				b.Score, b.HasScore = scores[serial], true
				given[o] = true
				break
			}
		}
	}
	return nil
}

// Setters for quality numbers which come from outside the file.
func (s *Structure) SetR(x float64)                { s.q.R = x }
func (s *Structure) SetRfree(x float64)            { s.q.Rfree = x }
func (s *Structure) SetRSRZ(x float64)             { s.q.RSRZ = x }
func (s *Structure) SetDataCompleteness(x float64) { s.q.DataCompleteness = x }
func (s *Structure) SetTwinL(x float64)            { s.q.TwinL = x }
func (s *Structure) SetTwinL2(x float64)           { s.q.TwinL2 = x }

// Validation is what a validation report says about a structure.
type Validation struct {
	DataCompleteness float64
	RSRZ             float64
	TwinL            float64
	TwinL2           float64
}

// ApplyValidation copies all the validation numbers.
func (s *Structure) ApplyValidation(v Validation) {
	s.q.DataCompleteness = v.DataCompleteness
	s.q.RSRZ = v.RSRZ
	s.q.TwinL = v.TwinL
	s.q.TwinL2 = v.TwinL2
}
