package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomScores = `Infile id,Atom name,EDIA,Residue
1,N,0.91,ALA
2,CA,1.02,ALA
17,OG,0.44,SER
`

// ediaServer runs the three steps. With ready false, the result has no
// atom_scores link.
func ediaServer(t *testing.T, ready bool) *httptest.Server {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/edia_rest":
			if r.Method != http.MethodPost {
				http.Error(w, "post only", http.StatusMethodNotAllowed)
				return
			}
			var req map[string]map[string]string
			b, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(b, &req); err != nil || req["edia"]["pdbCode"] != "1abc" {
				http.Error(w, "bad job", http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"location": srv.URL + "/jobs/42"})
		case "/jobs/42":
			res := map[string]string{"status": "done"}
			if ready {
				res["atom_scores"] = srv.URL + "/jobs/42/atom_scores.csv"
			}
			_ = json.NewEncoder(w).Encode(res)
		case "/jobs/42/atom_scores.csv":
			_, _ = w.Write([]byte(atomScores))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEDIAScorer(t *testing.T) {
	srv := ediaServer(t, true)
	e := &EDIAScorer{Client: srv.Client(), URL: srv.URL + "/api/edia_rest"}
	scores, err := e.Scores(context.Background(), "1ABC")
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 0.91, 2: 1.02, 17: 0.44}, scores)

	srv = ediaServer(t, false)
	e = &EDIAScorer{Client: srv.Client(), URL: srv.URL + "/api/edia_rest"}
	_, err = e.Scores(context.Background(), "1abc")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestParseAtomScores(t *testing.T) {
	_, err := ParseAtomScores(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err, "missing columns")
	_, err = ParseAtomScores(strings.NewReader("Infile id,EDIA\nx,0.5\n"))
	assert.Error(t, err, "bad id")
	_, err = ParseAtomScores(strings.NewReader(""))
	assert.Error(t, err, "no header")
	s, err := ParseAtomScores(strings.NewReader("EDIA,Infile id\n0.5,3\n"))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{3: 0.5}, s)
}
