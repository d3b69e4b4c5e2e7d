package protein

// resolveConfs decides which alternate conformation each residue uses.
// Neighbours in the conformation list from the same residue are a pair
// and the one with higher occupancy wins. With equal occupancy, the
// first one read wins. Only pairs are compared, so with three or more
// alternates the third only counts if there was no pair before it.
// Partial occupancy with no alternate location marker has nothing to
// compete with. A residue whose alternates all had full occupancy uses
// the first one read.
func (b *builder) resolveConfs() {
	alts := make([]conf, 0, len(b.s.conf))
	for _, c := range b.s.conf {
		if c.alt != ' ' {
			alts = append(alts, c)
		}
	}
	for i := 0; i < len(alts); i++ {
		c := alts[i]
		if i+1 < len(alts) && alts[i+1].rid == c.rid {
			if alts[i+1].occup > c.occup {
				c = alts[i+1]
			}
			i++
		}
		b.choose(c)
	}
	for _, rid := range b.s.residues {
		r := b.ar.residues[rid]
		for _, aid := range r.atoms {
			if r.AltLoc != ' ' {
				break
			}
			r.AltLoc = b.ar.atoms[aid].AltLoc
		}
	}
}

// choose sets the conformation a residue uses, unless it already has one.
func (b *builder) choose(c conf) {
	if r := b.ar.residues[c.rid]; r.AltLoc == ' ' {
		r.AltLoc = c.alt
	}
}
