package protein

// REMARK records. The interesting ones are tables whose layout is
// announced by a header line, or label : value pairs. Both are driven by
// the tables below, so a new variant means a new table entry.

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/andrew-torda/prot3d/pdb/cmmn"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

// rVariant names the working and free R value labels of one style of
// REMARK 3. When a file has more than one style, the first in the table
// wins.
type rVariant struct {
	work, free string
}

var rVariants = []rVariant{
	{work: "R VALUE (WORKING SET)", free: "FREE R VALUE"},
	{work: "R VALUE (WORKING SET, NO CUTOFF)", free: "FREE R VALUE (NO CUTOFF)"},
}

type rValues struct {
	seen     bool
	r, rfree float64
}

// rowTable is a REMARK table. Rows follow one of the header lines and
// stop at the first line which is not the same REMARK.
type rowTable struct {
	num     int
	headers []string // whitespace squeezed
	row     func(h *header, toks []string) error
}

var rowTables = []*rowTable{
	{num: 465, headers: []string{"M RES C SSSEQI", "RES C SSSEQI"}, row: (*header).missingResidue},
	{num: 470, headers: []string{"M RES CSSEQI ATOMS", "RES CSSEQI ATOMS"}, row: (*header).missingAtoms},
}

func (t *rowTable) isHeader(squeezed string) bool {
	for _, s := range t.headers {
		if s == squeezed {
			return true
		}
	}
	return false
}

// header collects everything from REMARK records.
type header struct {
	log        *log.Logger
	rv         []rValues
	resolution float64
	open       *rowTable
	missAAs    []MissingResidue
	missAtoms  map[ResKey]MissingAtoms
}

func newHeader(l *log.Logger) header {
	rv := make([]rValues, len(rVariants))
	for i := range rv {
		rv[i] = rValues{r: NotParsed, rfree: NotParsed}
	}
	return header{
		log:        l,
		rv:         rv,
		resolution: NotParsed,
		missAtoms:  make(map[ResKey]MissingAtoms),
	}
}

func squeeze(s string) string { return strings.Join(strings.Fields(s), " ") }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitSeq reads a sequence number with an optional insertion code
// stuck on the end, like "100A".
func splitSeq(s string) (int, byte, error) {
	icode := byte(' ')
	if l := len(s); l > 1 && (s[l-1] < '0' || s[l-1] > '9') {
		icode = s[l-1]
		s = s[:l-1]
	}
	seq, err := strconv.Atoi(s)
	return seq, icode, err
}

// close ends any open table. Called for every line that is not a REMARK.
func (h *header) close() { h.open = nil }

// remark takes one REMARK line.
func (h *header) remark(line []byte, n int) error {
	if len(line) < 10 {
		return nil
	}
	num, err := strconv.Atoi(strings.TrimSpace(string(line[6:10])))
	if err != nil {
		return nil // free text remarks have no number
	}
	content := string(line[10:])
	if h.open != nil && h.open.num != num {
		h.open = nil
	}
	switch num {
	case 2:
		h.setResolution(content)
	case 3:
		h.rValue(content)
	}
	if h.open != nil {
		toks := strings.Fields(content)
		if len(toks) == 0 {
			return nil
		}
		if err := h.open.row(h, toks); err != nil {
			return &perr.MalformedRecordError{
				N: n, Field: "REMARK " + strconv.Itoa(num), Inline: string(line), Err: err}
		}
		return nil
	}
	squeezed := squeeze(content)
	for _, t := range rowTables {
		if t.num == num && t.isHeader(squeezed) {
			h.open = t
		}
	}
	return nil
}

// setResolution reads "RESOLUTION.    1.80 ANGSTROMS."
func (h *header) setResolution(content string) {
	toks := strings.Fields(content)
	for i := 0; i < len(toks)-1; i++ {
		if toks[i] == "RESOLUTION." {
			if x, err := strconv.ParseFloat(toks[i+1], 64); err == nil {
				h.resolution = x
			}
			return
		}
	}
}

// rValue looks for the labels in rVariants.
func (h *header) rValue(content string) {
	i := strings.IndexByte(content, ':')
	if i < 0 {
		return
	}
	label := squeeze(content[:i])
	val := strings.TrimSpace(content[i+1:])
	for vi, v := range rVariants {
		switch label {
		case v.work:
			h.rv[vi].seen = true
			h.rv[vi].r = h.rNumber(label, val, NullR)
		case v.free:
			h.rv[vi].rfree = h.rNumber(label, val, NullRfree)
		}
	}
}

func (h *header) rNumber(label, val string, null float64) float64 {
	if val == "NULL" {
		return null
	}
	x, err := strconv.ParseFloat(val, 64)
	if err != nil {
		h.log.Printf("REMARK 3 %s: cannot read %q", label, val)
		return NotParsed
	}
	return x
}

// rFinal returns the R values from the preferred variant.
func (h *header) rFinal() (r, rfree float64) {
	for _, v := range h.rv {
		if v.seen {
			return v.r, v.rfree
		}
	}
	return NotParsed, NotParsed
}

// dropModel removes the model number column, which only has something in
// it for multi-model files.
func dropModel(toks []string) []string {
	if len(toks) >= 3 && isDigits(toks[0]) {
		return toks[1:]
	}
	return toks
}

var errShortRow = errors.New("too few columns")

// missingResidue reads "MET A 1" or, with a blank chain, "MET 1".
func (h *header) missingResidue(toks []string) error {
	toks = dropModel(toks)
	var code, chain, seqs string
	switch len(toks) {
	case 3:
		code, chain, seqs = toks[0], toks[1], toks[2]
	case 2:
		code, chain, seqs = toks[0], cmmn.BlankChain, toks[1]
	default:
		return errShortRow
	}
	seq, icode, err := splitSeq(seqs)
	if err != nil {
		return err
	}
	h.missAAs = append(h.missAAs, MissingResidue{Code: code, Chain: chain, Seq: seq, ICode: icode})
	return nil
}

// missingAtoms reads "LYS A 15 CG CD CE NZ", or "LYS 15 CG ..." when the
// chain is blank. Only carbon, nitrogen,
// oxygen and hydrogen names are kept.
func (h *header) missingAtoms(toks []string) error {
	if len(toks) >= 5 && isDigits(toks[0]) {
		toks = toks[1:]
	}
	if len(toks) < 3 {
		return errShortRow
	}
	if _, _, err := splitSeq(toks[2]); err != nil {
		if _, _, err := splitSeq(toks[1]); err == nil { // blank chain
			toks = append([]string{toks[0], cmmn.BlankChain}, toks[1:]...)
		}
	}
	seq, _, err := splitSeq(toks[2])
	if err != nil {
		return err
	}
	key := ResKey{Chain: toks[1], Seq: seq}
	m, ok := h.missAtoms[key]
	if !ok {
		m = MissingAtoms{Code: toks[0]}
	}
	for _, name := range toks[3:] {
		switch name[0] {
		case 'C', 'N', 'O', 'H':
			m.Atoms = append(m.Atoms, MissingAtom{Sym: name[:1], Name: name})
		}
	}
	h.missAtoms[key] = m
	return nil
}
