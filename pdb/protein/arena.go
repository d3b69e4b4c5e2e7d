package protein

// arena owns every atom and residue which has been read. Everything else
// refers to them by index. views are the structures using the arena, the
// one from the parse and any made by ExtractChain.
type arena struct {
	atoms    []*Atom
	residues []*Residue
	views    []*Structure
}

func (ar *arena) newAtom(a Atom) atomID {
	id := atomID(len(ar.atoms))
	a.res = none
	ar.atoms = append(ar.atoms, &a)
	return id
}

func (ar *arena) newResidue(code string, k site, occup float32) resID {
	id := resID(len(ar.residues))
	r := &Residue{
		Code:   code,
		Chain:  k.chain,
		Seq:    k.seq,
		ICode:  k.icode,
		AltLoc: ' ',
		Occup:  occup,
		ar:     ar,
		id:     id,
		prev:   none,
		next:   none,
		bonds:  make(bondSet),
	}
	ar.residues = append(ar.residues, r)
	return id
}

// residue returns nil for none.
func (ar *arena) residue(id resID) *Residue {
	if id == none {
		return nil
	}
	return ar.residues[id]
}
