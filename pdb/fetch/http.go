package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/andrew-torda/prot3d/pdb/metrics"
)

// Site is a web site with PDB format files. The URL is
// Base + Prefix + code + Suffix.
type Site struct {
	Base   string
	Prefix string
	Suffix string
}

// Sites are the places we know. Some give compressed files.
var Sites = []Site{
	{Base: "https://files.rcsb.org/download/", Suffix: ".pdb.gz"},
	{Base: "https://www.ebi.ac.uk/pdbe/entry-files/download/", Prefix: "pdb", Suffix: ".ent"},
	{Base: "https://files.rcsb.org/view/", Suffix: ".pdb"},
}

// HTTPFetcher downloads from one of Sites. There are no retries. If Site
// is too big, we use a modulo to wrap it around rather than give an
// error. This makes it easy to cycle through them or pick one at random.
type HTTPFetcher struct {
	Client *http.Client
	Sites  []Site
	Site   int
}

// NewHTTPFetcher uses the default sites and a client with a timeout.
func NewHTTPFetcher(site int) *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{Timeout: 2 * time.Minute},
		Sites:  Sites,
		Site:   site,
	}
}

// URL says where a code would be fetched from.
func (f *HTTPFetcher) URL(code string) string {
	s := f.Sites[f.Site%len(f.Sites)]
	return s.Base + s.Prefix + code + s.Suffix
}

// Fetch downloads one entry.
func (f *HTTPFetcher) Fetch(ctx context.Context, code string) ([]byte, error) {
	code, err := checkCode(code)
	if err != nil {
		return nil, err
	}
	b, err := get(ctx, f.Client, f.URL(code), code)
	metrics.Fetch("http", outcome(err))
	return b, err
}
