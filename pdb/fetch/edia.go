package fetch

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andrew-torda/prot3d/pdb/metrics"
)

// EDIAURL is the proteins.plus service which scores how well each atom
// fits the electron density.
const EDIAURL = "https://proteins.plus/api/edia_rest"

// ErrNotReady is a scoring job which has not finished. We do not poll.
var ErrNotReady = errors.New("edia: job has no atom scores yet")

// EDIAScorer submits a job and collects the per atom scores.
type EDIAScorer struct {
	Client *http.Client
	URL    string
}

// NewEDIAScorer uses EDIAURL.
func NewEDIAScorer() *EDIAScorer {
	return &EDIAScorer{Client: &http.Client{Timeout: 5 * time.Minute}, URL: EDIAURL}
}

type ediaJob struct {
	Location string `json:"location"`
}

type ediaResult struct {
	AtomScores string `json:"atom_scores"`
}

// Scores returns EDIA scores keyed by atom serial number. There are three
// steps. Post the job, follow the location we get back, download the
// atom_scores table that points to.
func (e *EDIAScorer) Scores(ctx context.Context, code string) (map[int]float64, error) {
	code, err := checkCode(code)
	if err != nil {
		return nil, err
	}
	scores, err := e.scores(ctx, code)
	metrics.Fetch("edia", outcome(err))
	return scores, err
}

func (e *EDIAScorer) scores(ctx context.Context, code string) (map[int]float64, error) {
	body := fmt.Sprintf(`{"edia":{"pdbCode":%q}}`, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	b, err := do(e.Client, req, code)
	if err != nil {
		return nil, err
	}
	var job ediaJob
	if err := json.Unmarshal(b, &job); err != nil {
		return nil, fmt.Errorf("edia job for %s: %w", code, err)
	}
	if job.Location == "" {
		return nil, fmt.Errorf("edia job for %s: no location", code)
	}

	if b, err = get(ctx, e.Client, job.Location, code); err != nil {
		return nil, err
	}
	var res ediaResult
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("edia result for %s: %w", code, err)
	}
	if res.AtomScores == "" {
		return nil, ErrNotReady
	}

	if b, err = get(ctx, e.Client, res.AtomScores, code); err != nil {
		return nil, err
	}
	return ParseAtomScores(bytes.NewReader(b))
}

// ParseAtomScores reads the atom_scores table. Only the "Infile id" and
// "EDIA" columns are used.
func ParseAtomScores(r io.Reader) (map[int]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("atom scores header: %w", err)
	}
	iID, iScore := -1, -1
	for i, h := range head {
		switch strings.TrimSpace(h) {
		case "Infile id":
			iID = i
		case "EDIA":
			iScore = i
		}
	}
	if iID < 0 || iScore < 0 {
		return nil, fmt.Errorf("atom scores: missing columns in %v", head)
	}
	scores := make(map[int]float64)
	for n := 2; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("atom scores line %d: %w", n, err)
		}
		if len(rec) <= iID || len(rec) <= iScore {
			return nil, fmt.Errorf("atom scores line %d: short row", n)
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[iID]))
		if err != nil {
			return nil, fmt.Errorf("atom scores line %d: %w", n, err)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[iScore]), 64)
		if err != nil {
			return nil, fmt.Errorf("atom scores line %d: %w", n, err)
		}
		scores[id] = x
	}
	return scores, nil
}
