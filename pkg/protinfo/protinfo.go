// Package protinfo reads one or more structures and says what is in
// them. Structures come from local files or, by their four character
// codes, from the network.
package protinfo

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/prot3d/pdb"
	"github.com/andrew-torda/prot3d/pdb/elem"
	"github.com/andrew-torda/prot3d/pdb/fetch"
	"github.com/andrew-torda/prot3d/pdb/metrics"
	"github.com/andrew-torda/prot3d/pdb/protein"
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	Fetch      bool   // arguments are PDB codes, not file names
	Site       int    // which web mirror
	Chain      string // only report this chain
	NoWater    bool   // strip HOH before reporting
	Validation bool   // fetch the validation report
	EDIA       bool   // fetch EDIA scores
	LogFile    string // "", "stdout" or a file name
	Metrics    string // write counters here at the end
}

type validator interface {
	Fetch(ctx context.Context, code string) (protein.Validation, error)
}

type scorer interface {
	Scores(ctx context.Context, code string) (map[int]float64, error)
}

// sources is everything that comes over the network.
type sources struct {
	structures fetch.Fetcher
	validation validator
	edia       scorer
}

// Mymain summarises each structure in args and writes to outfile, or
// standard output if outfile is "" or "-".
func Mymain(flags *CmdFlag, args []string, outfile string) error {
	ctx := context.Background()
	var src sources
	if flags.Fetch {
		cfg := fetch.ConfigFromEnv()
		cfg.Site = flags.Site
		f, closer, err := fetch.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer closer()
		src.structures = f
	}
	if flags.Validation {
		src.validation = fetch.NewValidationFetcher()
	}
	if flags.EDIA {
		src.edia = fetch.NewEDIAScorer()
	}

	var fp io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer f.Close()
		fp = f
	}
	err := run(ctx, flags, &src, args, fp)
	if flags.Metrics != "" {
		if merr := metrics.WriteFile(flags.Metrics); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func run(ctx context.Context, flags *CmdFlag, src *sources, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("no structures given")
	}
	outlog, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	for _, arg := range args {
		var s *protein.Structure
		if src.structures != nil {
			s, err = pdb.FetchProtein(ctx, src.structures, arg, protein.WithLogger(outlog))
		} else {
			s, err = pdb.ReadProtein(arg, "", protein.WithLogger(outlog))
		}
		if err != nil {
			return err
		}
		if err := decorate(ctx, src, s, code(s, arg)); err != nil {
			return err
		}
		if flags.NoWater {
			s.StripHetMol("HOH")
		}
		if flags.Chain != "" {
			if s, err = s.ExtractChain(flags.Chain); err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
		}
		if err := summarise(w, s); err != nil {
			return err
		}
	}
	return nil
}

// code is the PDB code from the header, or else the argument.
func code(s *protein.Structure, arg string) string {
	if s.IDCode != "" {
		return strings.ToLower(s.IDCode)
	}
	return arg
}

// decorate adds validation numbers and scores from the network.
func decorate(ctx context.Context, src *sources, s *protein.Structure, code string) error {
	if src.validation != nil {
		v, err := src.validation.Fetch(ctx, code)
		if err != nil {
			return err
		}
		s.ApplyValidation(v)
	}
	if src.edia != nil {
		scores, err := src.edia.Scores(ctx, code)
		if err != nil {
			return err
		}
		if err := s.SetScores(scores); err != nil {
			return fmt.Errorf("edia scores for %s: %w", code, err)
		}
	}
	return nil
}

// sequence is the one letter sequence of a list of residues.
func sequence(rr []*protein.Residue) string {
	var sb strings.Builder
	for _, r := range rr {
		sb.WriteByte(elem.OneLetter(r.Code))
	}
	return sb.String()
}

func summarise(w io.Writer, s *protein.Structure) error {
	q := s.Quality()
	fmt.Fprintf(w, "# %s %s\n", s.IDCode, s.Path)
	fmt.Fprintf(w, "atoms %d residues %d chains %d heteroatoms %d bonds %d conformations %d\n",
		s.NAtoms(), s.NAAs(), s.NChains(), s.NHetAtoms(), s.NBonds(), len(s.Conformations()))
	for _, id := range s.ChainIDs() {
		rr := s.Chain(id)
		fmt.Fprintf(w, "chain %s %d %s\n", id, len(rr), sequence(rr))
	}
	fmt.Fprintf(w, "resolution %.2f R %.3f Rfree %.3f\n", q.Resolution, q.R, q.Rfree)
	fmt.Fprintf(w, "completeness %.1f rsrz %.1f twinL %.3f twinL2 %.3f\n",
		q.DataCompleteness, q.RSRZ, q.TwinL, q.TwinL2)
	nMissAtom := 0
	for _, m := range s.MissingAtoms() {
		nMissAtom += len(m.Atoms)
	}
	fmt.Fprintf(w, "missing residues %d missing atoms %d\n", len(s.MissingAAs()), nMissAtom)
	if m := s.FindMetal(false); len(m) > 0 {
		fmt.Fprintln(w, "metals", strings.Trim(fmt.Sprint(m), "[]"))
	}
	_, err := fmt.Fprintln(w)
	return err
}
