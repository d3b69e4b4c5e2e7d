package protein

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/andrew-torda/prot3d/pdb/atrec"
	"github.com/andrew-torda/prot3d/pdb/elem"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

// Option changes how Parse works.
type Option func(*builder)

// WithLogger sends progress and warnings to l. By default they are
// thrown away.
func WithLogger(l *log.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithPath records where the data came from.
func WithPath(path string) Option {
	return func(b *builder) { b.s.Path = path }
}

var errDupSerial = errors.New("atom serial number seen before")

// recordFn handles one record type.
type recordFn func(b *builder, line []byte) error

var records = map[string]recordFn{
	"HEADER": (*builder).headerRec,
	"REMARK": (*builder).remarkRec,
	"MODEL":  (*builder).modelRec,
	"ENDMDL": (*builder).endmdlRec,
	"ATOM":   (*builder).atomRec,
	"HETATM": (*builder).atomRec,
	"CONECT": (*builder).conectRec,
}

type pendingConect struct {
	n int
	c atrec.Conect
}

// builder has all the state while reading. Nobody else sees the
// structure until finish.
type builder struct {
	s       *Structure
	ar      *arena
	log     *log.Logger
	hdr     header
	byKey   map[site]resID
	queued  map[altKey]bool
	conects []pendingConect
	endmdl  bool // first model finished
	nSkip   int  // atoms from later models
	n       int  // line number
}

// altKey is one alternate conformation of one residue.
type altKey struct {
	rid resID
	alt byte
}

func newBuilder(opts ...Option) *builder {
	ar := &arena{}
	b := &builder{
		s:       newStructure(ar),
		ar:      ar,
		log:     log.New(io.Discard, "", log.Lshortfile),
		byKey:   make(map[site]resID),
		queued:  make(map[altKey]bool),
	}
	for _, o := range opts {
		o(b)
	}
	b.hdr = newHeader(b.log)
	return b
}

// lineScanner is a bufio.Scanner which counts lines for error messages.
type lineScanner struct {
	*bufio.Scanner
	n int
}

func (s *lineScanner) scan() bool {
	ok := s.Scan()
	if ok {
		s.n++
	}
	return ok
}

// Parse reads a PDB format file. Either the whole structure comes back,
// or an error and nothing.
func Parse(r io.Reader, opts ...Option) (*Structure, error) {
	b := newBuilder(opts...)
	scnr := lineScanner{Scanner: bufio.NewScanner(r)}
	for scnr.scan() {
		b.n = scnr.n
		if err := b.line(scnr.Bytes()); err != nil {
			if rerr := scnr.Err(); rerr != nil { // a broken last line
				return nil, readErr(rerr, scnr.n)
			}
			return nil, atLine(err, scnr.n)
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, readErr(err, scnr.n)
	}
	return b.finish()
}

// ParseBytes is Parse for data already in memory.
func ParseBytes(data []byte, opts ...Option) (*Structure, error) {
	return Parse(bytes.NewReader(data), opts...)
}

func readErr(err error, n int) error {
	return fmt.Errorf("reading pdb after line %d: %w", n, err)
}

// atLine puts the line number into errors which do not know it.
func atLine(err error, n int) error {
	var merr *perr.MalformedRecordError
	if errors.As(err, &merr) && merr.N == 0 {
		merr.N = n
	}
	return err
}

func (b *builder) line(line []byte) error {
	name := atrec.RecordName(line)
	if name != "REMARK" {
		b.hdr.close()
	}
	if fn, ok := records[name]; ok {
		return fn(b, line)
	}
	return nil
}

func (b *builder) headerRec(line []byte) error {
	h := atrec.ParseHeader(line)
	b.s.IDCode = h.IDCode
	b.s.Classification = h.Classification
	return nil
}

func (b *builder) remarkRec(line []byte) error { return b.hdr.remark(line, b.n) }

func (b *builder) modelRec(_ []byte) error { return nil }

// endmdlRec means we have the first model. NMR files have many more,
// which we do not read.
func (b *builder) endmdlRec(_ []byte) error {
	b.endmdl = true
	return nil
}

// hetName is the residue name of a HETATM line. An alternate location
// marker is kept at the front, as in "AGLY".
func hetName(rec atrec.Record) string {
	if rec.AltLoc != ' ' {
		return string(rec.AltLoc) + rec.ResName
	}
	return rec.ResName
}

// atomRec does ATOM and HETATM. Heteroatoms which are really amino acids
// go into the chains as well as the heteroatom table.
func (b *builder) atomRec(line []byte) error {
	if b.endmdl {
		b.nSkip++
		return nil
	}
	rec, err := atrec.ParseAtom(line)
	if err != nil {
		return err
	}
	if _, dup := b.s.atoms[rec.Serial]; dup {
		return &perr.MalformedRecordError{Field: "serial", Inline: string(line), Err: errDupSerial}
	}
	aid := b.ar.newAtom(Atom{
		Serial:  rec.Serial,
		Sym:     rec.Element,
		Name:    rec.Name,
		AltLoc:  rec.AltLoc,
		Xyz:     rec.Xyz,
		Occup:   rec.Occup,
		Tfactor: rec.Tfactor,
		Charge:  rec.Charge,
		Het:     rec.Het,
	})
	b.s.atoms[rec.Serial] = aid
	if !rec.Het || elem.IsStandardResidue(hetName(rec)) {
		b.place(rec, aid)
	}
	if rec.Het {
		b.s.het[aid] = HetEntry{Mol: rec.ResName, Chain: rec.Chain}
	}
	return nil
}

// place puts an atom into its residue, making the residue and chain if
// this is the first time we see them. All alternates of a residue go
// into the one residue. Each alternate with partial occupancy is noted
// once in the conformation list.
func (b *builder) place(rec atrec.Record, aid atomID) {
	st := site{chain: rec.Chain, seq: rec.ResSeq, icode: rec.ICode}
	rid, ok := b.byKey[st]
	if !ok {
		if _, ok := b.s.chains[rec.Chain]; !ok {
			b.s.chainOrder = append(b.s.chainOrder, rec.Chain)
		}
		rid = b.newResidue(rec.ResName, st, rec.Occup)
		b.s.chains[rec.Chain] = append(b.s.chains[rec.Chain], rid)
	}
	if k := (altKey{rid, rec.AltLoc}); rec.Occup != 1 && !b.queued[k] {
		b.queued[k] = true
		b.s.conf = append(b.s.conf, conf{rid: rid, alt: rec.AltLoc, occup: rec.Occup})
	}
	b.ar.addAtom(rid, aid)
}

// newResidue makes a residue and links it to whatever is already there
// at seq - 1 and seq + 1.
func (b *builder) newResidue(code string, st site, occup float32) resID {
	rid := b.ar.newResidue(code, st, occup)
	b.byKey[st] = rid
	b.s.residues = append(b.s.residues, rid)
	r := b.ar.residues[rid]
	if p, ok := b.byKey[site{chain: st.chain, seq: st.seq - 1, icode: ' '}]; ok {
		r.prev = p
		if pr := b.ar.residues[p]; pr.next == none {
			pr.next = rid
		}
	}
	if nx, ok := b.byKey[site{chain: st.chain, seq: st.seq + 1, icode: ' '}]; ok {
		r.next = nx
		if nr := b.ar.residues[nx]; nr.prev == none {
			nr.prev = rid
		}
	}
	return rid
}

// sortChains puts the chains in sequence order.
func (b *builder) sortChains() {
	for _, rids := range b.s.chains {
		sort.SliceStable(rids, func(i, j int) bool {
			ri, rj := b.ar.residues[rids[i]], b.ar.residues[rids[j]]
			if ri.Seq != rj.Seq {
				return ri.Seq < rj.Seq
			}
			return ri.ICode < rj.ICode
		})
	}
}

// setBonds works out the bonds of every residue once all atoms are in.
func (b *builder) setBonds() {
	for _, rid := range b.s.residues {
		b.ar.setBonds(rid)
		b.s.bonds.union(b.ar.residues[rid].bonds)
	}
}

// conectRec keeps the record until all atoms have been read.
func (b *builder) conectRec(line []byte) error {
	c, err := atrec.ParseConect(line)
	if err != nil {
		return err
	}
	b.conects = append(b.conects, pendingConect{n: b.n, c: c})
	return nil
}

func (b *builder) resolveConects() error {
	for _, pc := range b.conects {
		from, ok := b.s.atoms[pc.c.Serial]
		if !ok {
			return &perr.UnresolvedReferenceError{N: pc.n, Serial: pc.c.Serial, From: "CONECT"}
		}
		for _, p := range pc.c.Partners {
			to, ok := b.s.atoms[p]
			if !ok {
				return &perr.UnresolvedReferenceError{N: pc.n, Serial: p, From: "CONECT"}
			}
			b.s.bonds.add(from, to)
		}
	}
	return nil
}

func (b *builder) finish() (*Structure, error) {
	if err := b.resolveConects(); err != nil {
		return nil, err
	}
	b.resolveConfs()
	b.sortChains()
	b.setBonds()
	s := b.s
	s.q.R, s.q.Rfree = b.hdr.rFinal()
	s.q.Resolution = b.hdr.resolution
	s.missAAs = b.hdr.missAAs
	s.missAtoms = b.hdr.missAtoms
	if b.nSkip > 0 {
		b.log.Printf("%s skipped %d atoms after the first model", s.IDCode, b.nSkip)
	}
	b.log.Printf("%s: %d atoms, %d residues, %d chains, %d heteroatoms, %d bonds",
		s.IDCode, s.NAtoms(), s.NAAs(), s.NChains(), s.NHetAtoms(), s.NBonds())
	return s, nil
}
