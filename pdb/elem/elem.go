// Package elem knows about residue names and elements. It answers
// questions like "is this a standard amino acid" or "is this a metal".
package elem

import (
	"strings"
)

// aminoThreeToOne maps the three letter amino acid names to the single
// letter code. Only real amino acids go here, not ACE, NH2 or UNK.
var aminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// IsStandardResidue says if code is one of the standard amino acids.
// Some files glue the alternate location onto the name, as in "AALA",
// so a four letter code is checked without its first character.
func IsStandardResidue(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := aminoThreeToOne[code]; ok {
		return true
	}
	if len(code) == 4 {
		_, ok := aminoThreeToOne[code[1:]]
		return ok
	}
	return false
}

// OneLetter returns the one letter code for a residue, or 'X'.
func OneLetter(code string) byte {
	if c, ok := aminoThreeToOne[strings.ToUpper(code)]; ok {
		return c
	}
	return 'X'
}

// Elements are kept in the normal spelling, "Zn", not "ZN".
var transitionMetals = map[string]bool{
	"Sc": true, "Ti": true, "V": true, "Cr": true, "Mn": true, "Fe": true,
	"Co": true, "Ni": true, "Cu": true, "Zn": true,
	"Y": true, "Zr": true, "Nb": true, "Mo": true, "Tc": true, "Ru": true,
	"Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"La": true, "Hf": true, "Ta": true, "W": true, "Re": true, "Os": true,
	"Ir": true, "Pt": true, "Au": true, "Hg": true,
}

var otherMetals = map[string]bool{
	"Li": true, "Na": true, "K": true, "Rb": true, "Cs": true,
	"Be": true, "Mg": true, "Ca": true, "Sr": true, "Ba": true,
	"Al": true, "Ga": true, "In": true, "Sn": true, "Tl": true, "Pb": true, "Bi": true,
	"Ce": true, "Pr": true, "Nd": true, "Sm": true, "Eu": true, "Gd": true,
	"Tb": true, "Dy": true, "Ho": true, "Er": true, "Tm": true, "Yb": true, "Lu": true,
	"U": true,
}

// IsMetal says if an element is a metal. With transitionOnly, only
// the d-block counts.
func IsMetal(sym string, transitionOnly bool) bool {
	sym = Normalise(sym)
	if transitionMetals[sym] {
		return true
	}
	if transitionOnly {
		return false
	}
	return otherMetals[sym]
}

// Normalise turns "ZN", "zn" or " Zn" into "Zn".
func Normalise(sym string) string {
	sym = strings.TrimSpace(sym)
	switch len(sym) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(sym)
	}
	return strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
}
