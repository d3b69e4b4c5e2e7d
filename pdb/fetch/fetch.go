// Package fetch gets PDB files and facts about them from elsewhere: the
// PDB web sites, an S3 mirror, a local SQLite cache, the wwPDB
// validation reports and the EDIA scoring service.
//
// Fetchers return the bytes as the source gave them, which may be gzip
// compressed. zwrap.FromBytes sorts that out.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andrew-torda/prot3d/pdb/metrics"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

var errEmpty = errors.New("empty response")

// Fetcher gets the coordinates for a four character PDB code.
type Fetcher interface {
	Fetch(ctx context.Context, code string) ([]byte, error)
}

// checkCode wants four characters, a digit and then letters or digits,
// and returns it in lower case.
func checkCode(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	bad := &perr.InvalidQueryError{What: "pdb code", Key: code}
	if len(code) != 4 || code[0] < '1' || code[0] > '9' {
		return "", bad
	}
	for i := 1; i < 4; i++ {
		c := code[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return "", bad
		}
	}
	return code, nil
}

// outcome turns an error into a label for the counters.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OK
	case errors.Is(err, perr.ErrNotFound):
		return metrics.NotFound
	}
	return metrics.Failed
}

// get does a GET and returns the body. 404 and empty bodies are
// NotFoundErrors for id.
func get(ctx context.Context, client *http.Client, url, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return do(client, req, id)
}

func do(client *http.Client, req *http.Request, id string) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	url := req.URL.String()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &perr.NotFoundError{ID: id, Source: url}
	case resp.StatusCode/100 != 2:
		return nil, fmt.Errorf("wanted %s using %s, got %s", id, url, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if len(b) == 0 {
		return nil, &perr.NotFoundError{ID: id, Source: url, Err: errEmpty}
	}
	return b, nil
}
