// Package atrec reads single fixed column records from PDB files:
// ATOM, HETATM, CONECT and HEADER. It knows nothing about residues or
// chains beyond what is written on one line.
//
// Columns are taken from
// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html
// Each record type has a table of named extents, so an error can say
// which field it could not read.
package atrec

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/andrew-torda/prot3d/pdb/cmmn"
	"github.com/andrew-torda/prot3d/pdb/elem"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

// field is a half open range of columns, counting from zero, as in a
// slice expression.
type field struct {
	name       string
	start, end int
}

// get returns the trimmed contents of a field. Lines which are too short
// give back what there is, possibly nothing.
func (f field) get(line []byte) string {
	if f.start >= len(line) {
		return ""
	}
	end := f.end
	if end > len(line) {
		end = len(line)
	}
	return string(bytes.TrimSpace(line[f.start:end]))
}

// byteAt returns the single character of a one column field or a blank.
func (f field) byteAt(line []byte) byte {
	if f.start >= len(line) {
		return ' '
	}
	return line[f.start]
}

// Extents for ATOM and HETATM.
var (
	fRecName = field{"record name", 0, 6}
	fSerial  = field{"serial", 6, 11}
	fName    = field{"atom name", 12, 16}
	fAltLoc  = field{"altLoc", 16, 17}
	fResName = field{"resName", 17, 20}
	fChain   = field{"chainID", 21, 22}
	fResSeq  = field{"resSeq", 22, 26}
	fICode   = field{"iCode", 26, 27}
	fX       = field{"x", 30, 38}
	fY       = field{"y", 38, 46}
	fZ       = field{"z", 46, 54}
	fOccup   = field{"occupancy", 54, 60}
	fTemp    = field{"tempFactor", 60, 66}
	fElement = field{"element", 76, 78}
	fCharge  = field{"charge", 78, 80}
)

// Extents for CONECT. Columns after 31 were hydrogen bonds in old
// versions of the format and are not read.
var (
	fConOrigin   = field{"serial", 6, 11}
	fConPartners = []field{
		{"bonded 1", 11, 16},
		{"bonded 2", 16, 21},
		{"bonded 3", 21, 26},
		{"bonded 4", 26, 31},
	}
)

// Extents for HEADER.
var (
	fClassification = field{"classification", 10, 50}
	fIDCode         = field{"idCode", 62, 66}
)

// minAtomLen is the shortest ATOM line we accept. It has to reach the
// end of the z coordinate.
const minAtomLen = 54

// Record is what we get from one ATOM or HETATM line.
type Record struct {
	Het     bool
	Serial  int
	Name    string // atom name, like "CA"
	AltLoc  byte
	ResName string
	Chain   string
	ResSeq  int
	ICode   byte
	Xyz     cmmn.Xyz
	Occup   float32
	Tfactor float32
	Element string // normalised, "Zn" not "ZN"
	Charge  string
}

// Conect is one CONECT line. Partners may be empty.
type Conect struct {
	Serial   int
	Partners []int
}

// Header is the HEADER line.
type Header struct {
	Classification string
	IDCode         string
}

// RecordName gives the first six columns without padding.
func RecordName(line []byte) string {
	return fRecName.get(line)
}

func malformed(f field, line []byte, err error) error {
	return &perr.MalformedRecordError{Field: f.name, Inline: string(line), Err: err}
}

func getInt(f field, line []byte) (int, error) {
	i, err := strconv.Atoi(f.get(line))
	if err != nil {
		return 0, malformed(f, line, err)
	}
	return i, nil
}

func getFloat(f field, line []byte) (float32, error) {
	x, err := strconv.ParseFloat(f.get(line), 32)
	if err != nil {
		return 0, malformed(f, line, err)
	}
	return float32(x), nil
}

// getFloatDflt is for the optional columns. Blank gives the default,
// anything else has to be a number.
func getFloatDflt(f field, line []byte, dflt float32) (float32, error) {
	if f.get(line) == "" {
		return dflt, nil
	}
	return getFloat(f, line)
}

// ParseAtom reads an ATOM or HETATM line. The serial number, residue
// number and coordinates have to be there. Occupancy defaults to 1 and
// the temperature factor to 0. If the element columns are empty, we
// guess from the atom name.
func ParseAtom(line []byte) (Record, error) {
	var r Record
	switch RecordName(line) {
	case "ATOM":
	case "HETATM":
		r.Het = true
	default:
		return r, malformed(fRecName, line, nil)
	}
	if len(line) < minAtomLen {
		return r, malformed(fZ, line, nil)
	}
	var err error
	if r.Serial, err = getInt(fSerial, line); err != nil {
		return r, err
	}
	if r.ResSeq, err = getInt(fResSeq, line); err != nil {
		return r, err
	}
	if r.Xyz.X, err = getFloat(fX, line); err != nil {
		return r, err
	}
	if r.Xyz.Y, err = getFloat(fY, line); err != nil {
		return r, err
	}
	if r.Xyz.Z, err = getFloat(fZ, line); err != nil {
		return r, err
	}
	if r.Occup, err = getFloatDflt(fOccup, line, 1.0); err != nil {
		return r, err
	}
	if r.Tfactor, err = getFloatDflt(fTemp, line, 0); err != nil {
		return r, err
	}
	r.Name = fName.get(line)
	r.AltLoc = fAltLoc.byteAt(line)
	r.ResName = fResName.get(line)
	r.Chain = cmmn.ChainID(fChain.byteAt(line))
	r.ICode = fICode.byteAt(line)
	r.Charge = fCharge.get(line)
	if s := fElement.get(line); s != "" {
		r.Element = elem.Normalise(s)
	} else {
		r.Element = elem.SymbolFromName(r.Name)
	}
	return r, nil
}

// ParseConect reads a CONECT line.
func ParseConect(line []byte) (Conect, error) {
	var c Conect
	if RecordName(line) != "CONECT" {
		return c, malformed(fRecName, line, nil)
	}
	var err error
	if c.Serial, err = getInt(fConOrigin, line); err != nil {
		return c, err
	}
	for _, f := range fConPartners {
		if f.get(line) == "" {
			continue
		}
		i, err := getInt(f, line)
		if err != nil {
			return c, err
		}
		c.Partners = append(c.Partners, i)
	}
	return c, nil
}

// ParseHeader reads the HEADER line. There is nothing in it which can
// be broken, so there is no error.
func ParseHeader(line []byte) Header {
	return Header{
		Classification: fClassification.get(line),
		IDCode:         strings.ToLower(fIDCode.get(line)),
	}
}
