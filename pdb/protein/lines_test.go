package protein

import (
	"fmt"
	"strings"
)

// at is one ATOM or HETATM line in a test file.
type at struct {
	het     bool
	serial  int
	name    string
	alt     byte
	res     string
	chain   byte
	seq     int
	x, y, z float64
	occ     float64
	el      string
}

func (a at) String() string {
	rec := "ATOM"
	if a.het {
		rec = "HETATM"
	}
	alt := a.alt
	if alt == 0 {
		alt = ' '
	}
	occ := a.occ
	if occ == 0 {
		occ = 1
	}
	return fmt.Sprintf("%-6s%5d %-4s%c%3s %c%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		rec, a.serial, a.name, alt, a.res, a.chain, a.seq, ' ', a.x, a.y, a.z, occ, 20.0, a.el)
}

func conect(serials ...int) string {
	var sb strings.Builder
	sb.WriteString("CONECT")
	for _, s := range serials {
		fmt.Fprintf(&sb, "%5d", s)
	}
	return sb.String()
}

// pdbText joins records into a file. Each argument is either an at
// or a ready made line.
func pdbText(recs ...any) string {
	var sb strings.Builder
	for _, r := range recs {
		fmt.Fprintln(&sb, r)
	}
	return sb.String()
}

// dipeptide is ALA 1 and GLY 2 in chain A with one peptide bond.
var dipeptide = []any{
	"HEADER    TEST PEPTIDE                            18-OCT-26   1ABC              ",
	at{serial: 1, name: "N", res: "ALA", chain: 'A', seq: 1, x: -0.677, y: -1.230, z: -0.491, el: "N"},
	at{serial: 2, name: "CA", res: "ALA", chain: 'A', seq: 1, x: -0.001, y: 0.064, z: -0.491, el: "C"},
	at{serial: 3, name: "C", res: "ALA", chain: 'A', seq: 1, x: 1.499, y: -0.110, z: -0.491, el: "C"},
	at{serial: 4, name: "O", res: "ALA", chain: 'A', seq: 1, x: 2.030, y: -1.227, z: -0.502, el: "O"},
	at{serial: 5, name: "CB", res: "ALA", chain: 'A', seq: 1, x: -0.509, y: 0.856, z: 0.727, el: "C"},
	at{serial: 6, name: "N", res: "GLY", chain: 'A', seq: 2, x: 2.250, y: 0.985, z: -0.479, el: "N"},
	at{serial: 7, name: "CA", res: "GLY", chain: 'A', seq: 2, x: 3.700, y: 0.910, z: -0.470, el: "C"},
	at{serial: 8, name: "C", res: "GLY", chain: 'A', seq: 2, x: 4.260, y: 2.320, z: -0.470, el: "C"},
	at{serial: 9, name: "O", res: "GLY", chain: 'A', seq: 2, x: 3.530, y: 3.310, z: -0.470, el: "O"},
	at{serial: 10, name: "OXT", res: "GLY", chain: 'A', seq: 2, x: 5.500, y: 2.460, z: -0.470, el: "O"},
	"TER      11      GLY A   2",
	"END",
}

// shifted copies residue atoms to a new place, with new serial numbers,
// sequence number and chain.
func shifted(atoms []any, serial0, seq int, chain byte, dx float64) []any {
	var ret []any
	for _, r := range atoms {
		a, ok := r.(at)
		if !ok {
			continue
		}
		a.serial += serial0
		a.seq += seq
		a.chain = chain
		a.x += dx
		ret = append(ret, a)
	}
	return ret
}

// zincSite has three residues far apart in chain A, each giving one
// atom to a zinc, a water, and CONECT records for the zinc.
var zincSite = []any{
	at{serial: 1, name: "N", res: "CYS", chain: 'A', seq: 10, x: 10, y: 0, z: 0, el: "N"},
	at{serial: 2, name: "CA", res: "CYS", chain: 'A', seq: 10, x: 11.46, y: 0, z: 0, el: "C"},
	at{serial: 3, name: "SG", res: "CYS", chain: 'A', seq: 10, x: 11.46, y: 1.82, z: 0, el: "S"},
	at{serial: 4, name: "N", res: "HIS", chain: 'A', seq: 20, x: 20, y: 0, z: 0, el: "N"},
	at{serial: 5, name: "CA", res: "HIS", chain: 'A', seq: 20, x: 21.46, y: 0, z: 0, el: "C"},
	at{serial: 6, name: "NE2", res: "HIS", chain: 'A', seq: 20, x: 21.46, y: 1.33, z: 0, el: "N"},
	at{serial: 7, name: "N", res: "CYS", chain: 'A', seq: 30, x: 30, y: 0, z: 0, el: "N"},
	at{serial: 8, name: "CA", res: "CYS", chain: 'A', seq: 30, x: 31.46, y: 0, z: 0, el: "C"},
	at{serial: 9, name: "SG", res: "CYS", chain: 'A', seq: 30, x: 31.46, y: 1.82, z: 0, el: "S"},
	at{het: true, serial: 20, name: "ZN", res: "ZN", chain: 'A', seq: 401, x: 20, y: 5, z: 0, el: "ZN"},
	at{het: true, serial: 21, name: "O", res: "HOH", chain: 'A', seq: 501, x: 40, y: 5, z: 0, el: "O"},
	conect(20, 3, 6, 9),
}
