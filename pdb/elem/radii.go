package elem

// Covalent radii from Cordero et al., 2008 (DOI:10.1039/B801115J).
// Only the usual bio-elements and the metals one sees in proteins.
var covRad = map[string]float32{
	"H":  0.31,
	"C":  0.76, // sp3
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.20,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.50, // hs
	"Fe": 1.52, // hs
	"Mn": 1.61, // hs
	"Ni": 1.24,
	"Cr": 1.39,
	"Mo": 1.54,
	"Cd": 1.44,
	"Hg": 1.32,
	"F":  0.57,
	"Br": 1.20,
	"I":  1.39,
}

const dfltCovRad = 1.5

// CovRad returns the covalent radius of an element, or a generous default
// for things we do not know.
func CovRad(sym string) float32 {
	if r, ok := covRad[Normalise(sym)]; ok {
		return r
	}
	return dfltCovRad
}

// SymbolFromName guesses the element from a PDB atom name when the element
// columns are empty. Only two letter names which cannot be mistaken for a
// protein atom are recognised. "CA" is an alpha carbon and "NA" could be
// a haem nitrogen, so they stay as C and N.
func SymbolFromName(name string) string {
	if name == "" {
		return ""
	}
	for len(name) > 0 && name[0] >= '0' && name[0] <= '9' { // like 1HB
		name = name[1:]
	}
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		switch name[:2] {
		case "CL":
			return "Cl"
		case "CU":
			return "Cu"
		case "ZN":
			return "Zn"
		case "FE":
			return "Fe"
		case "MG":
			return "Mg"
		case "MN":
			return "Mn"
		case "SE":
			return "Se"
		case "BR":
			return "Br"
		}
	}
	return Normalise(name[:1])
}
