package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/prot3d/pdb/perr"
)

const onePDB = "HEADER    TEST\nEND\n"

// pdbServer serves 1abc, an empty 2abc and fails on 3abc.
func pdbServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/download/1abc.pdb":
			_, _ = w.Write([]byte(onePDB))
		case "/download/2abc.pdb":
		case "/download/3abc.pdb":
			http.Error(w, "oops", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckCode(t *testing.T) {
	for _, s := range []string{"1abc", "1ABC", " 5pti ", "9xyz"} {
		_, err := checkCode(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"", "abcd", "1ab", "1abcd", "0abc", "1a-c"} {
		_, err := checkCode(s)
		assert.ErrorIs(t, err, perr.ErrInvalidQuery, s)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := pdbServer(t)
	f := &HTTPFetcher{Client: srv.Client(), Sites: []Site{{Base: srv.URL + "/download/", Suffix: ".pdb"}}}
	ctx := context.Background()

	b, err := f.Fetch(ctx, "1ABC")
	require.NoError(t, err)
	assert.Equal(t, onePDB, string(b))

	_, err = f.Fetch(ctx, "2abc")
	assert.ErrorIs(t, err, perr.ErrNotFound, "empty body")
	_, err = f.Fetch(ctx, "4abc")
	var nf *perr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "4abc", nf.ID)
	_, err = f.Fetch(ctx, "3abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, perr.ErrNotFound)
	_, err = f.Fetch(ctx, "xx")
	assert.ErrorIs(t, err, perr.ErrInvalidQuery)
}

func TestSiteWraps(t *testing.T) {
	f := NewHTTPFetcher(len(Sites) + 1)
	assert.Equal(t, "https://www.ebi.ac.uk/pdbe/entry-files/download/pdb1abc.ent", f.URL("1abc"))
	f.Site = 0
	assert.Equal(t, "https://files.rcsb.org/download/1abc.pdb.gz", f.URL("1abc"))
}

// countingFetcher remembers how often it was asked.
type countingFetcher struct {
	n    int
	data map[string]string
}

func (c *countingFetcher) Fetch(_ context.Context, code string) ([]byte, error) {
	c.n++
	if s, ok := c.data[code]; ok {
		return []byte(s), nil
	}
	return nil, &perr.NotFoundError{ID: code}
}

func TestCachedFetcher(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "sub", "cache.db"))
	require.NoError(t, err)
	defer cache.Close()
	next := &countingFetcher{data: map[string]string{"1abc": onePDB}}
	f := &CachedFetcher{Cache: cache, Next: next, Source: "test"}

	for i := 0; i < 3; i++ {
		b, err := f.Fetch(ctx, "1abc")
		require.NoError(t, err)
		assert.Equal(t, onePDB, string(b))
	}
	assert.Equal(t, 1, next.n)

	_, err = f.Fetch(ctx, "2abc")
	assert.ErrorIs(t, err, perr.ErrNotFound)
	_, err = f.Fetch(ctx, "2abc")
	assert.ErrorIs(t, err, perr.ErrNotFound)
	assert.Equal(t, 3, next.n, "failures are not cached")
	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, err := cache.Get(ctx, "2abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := OpenCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, "1abc", "test", []byte("one")))
	require.NoError(t, c.Put(ctx, "1abc", "test", []byte("two")))
	require.NoError(t, c.Close())

	c, err = OpenCache(path)
	require.NoError(t, err)
	defer c.Close()
	b, ok, err := c.Get(ctx, "1abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", string(b))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PROT3D_S3_BUCKET", "pdb-mirror")
	t.Setenv("PROT3D_S3_PATH_STYLE", "TRUE")
	t.Setenv("PROT3D_S3_PREFIX", "pdb/")
	t.Setenv("PROT3D_CACHE", "/tmp/x.db")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	cfg := ConfigFromEnv()
	assert.Equal(t, "pdb-mirror", cfg.S3.Bucket)
	assert.True(t, cfg.S3.PathStyle)
	assert.Equal(t, "pdb/", cfg.S3.Prefix)
	assert.Equal(t, "/tmp/x.db", cfg.CachePath)
	assert.Equal(t, "AKIA", cfg.S3.AccessKeyID)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	f, closer, err := Open(ctx, Config{})
	require.NoError(t, err)
	assert.IsType(t, &HTTPFetcher{}, f)
	assert.NoError(t, closer())

	f, closer, err = Open(ctx, Config{CachePath: filepath.Join(t.TempDir(), "c.db"),
		S3: S3Config{Bucket: "b", AccessKeyID: "AKIA", SecretAccessKey: "SECRET"}})
	require.NoError(t, err)
	cf, ok := f.(*CachedFetcher)
	require.True(t, ok)
	assert.IsType(t, &S3Fetcher{}, cf.Next)
	assert.Equal(t, "s3", cf.Source)
	assert.NoError(t, closer())
}

func TestNotFoundMessage(t *testing.T) {
	err := error(&perr.NotFoundError{ID: "1abc", Source: "here"})
	assert.True(t, strings.HasPrefix(err.Error(), "1abc not found"))
}
