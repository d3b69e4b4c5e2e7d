package fetch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/andrew-torda/prot3d/pdb/metrics"
)

// Cache keeps downloaded files in one SQLite table, so a code is only
// fetched once.
type Cache struct {
	db   *sql.DB
	path string
}

// OpenCache opens or creates the cache at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		code TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		fetched INTEGER NOT NULL,
		data BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create entries table: %w", err)
	}
	return &Cache{db: db, path: path}, nil
}

// Get returns the cached bytes. ok is false if the code is not there.
func (c *Cache) Get(ctx context.Context, code string) (data []byte, ok bool, err error) {
	err = c.db.QueryRowContext(ctx, `SELECT data FROM entries WHERE code = ?`, code).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("cache %s: %w", c.path, err)
	}
	return data, true, nil
}

// Put stores data, replacing anything already there.
func (c *Cache) Put(ctx context.Context, code, source string, data []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO entries (code, source, fetched, data) VALUES (?, ?, ?, ?)`,
		code, source, time.Now().Unix(), data)
	if err != nil {
		return fmt.Errorf("cache %s: %w", c.path, err)
	}
	return nil
}

// Len is the number of entries.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

// Close closes the database.
func (c *Cache) Close() error { return c.db.Close() }

// CachedFetcher looks in a Cache before asking Next, and remembers what
// Next gave it. Failures are not cached.
type CachedFetcher struct {
	Cache  *Cache
	Next   Fetcher
	Source string // recorded with each entry, like "http" or "s3"
}

// Fetch gets a code from the cache or from Next.
func (f *CachedFetcher) Fetch(ctx context.Context, code string) ([]byte, error) {
	code, err := checkCode(code)
	if err != nil {
		return nil, err
	}
	data, ok, err := f.Cache.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if ok {
		metrics.Fetch("cache", metrics.OK)
		return data, nil
	}
	if data, err = f.Next.Fetch(ctx, code); err != nil {
		return nil, err
	}
	if err := f.Cache.Put(ctx, code, f.Source, data); err != nil {
		return nil, err
	}
	return data, nil
}
