package fetch

import (
	"context"
	"os"
	"strings"
)

// Config says how to get coordinates. With a bucket, files come from S3,
// otherwise from the web. With a cache path, they are kept in SQLite.
type Config struct {
	S3        S3Config
	CachePath string
	Site      int // which of Sites, for the web
}

// Environment variables:
//
//	PROT3D_S3_BUCKET=<bucket>       use S3 instead of the web
//	PROT3D_S3_REGION=<region>       default us-east-1
//	PROT3D_S3_ENDPOINT=<url>        for MinIO
//	PROT3D_S3_PATH_STYLE=true|false default false
//	PROT3D_S3_PREFIX=<prefix>       put in front of object names
//	PROT3D_CACHE=<path>             SQLite cache file
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)

// ConfigFromEnv reads the variables above.
func ConfigFromEnv() Config {
	return Config{
		S3: S3Config{
			Bucket:          os.Getenv("PROT3D_S3_BUCKET"),
			Region:          os.Getenv("PROT3D_S3_REGION"),
			Endpoint:        os.Getenv("PROT3D_S3_ENDPOINT"),
			PathStyle:       strings.EqualFold(os.Getenv("PROT3D_S3_PATH_STYLE"), "true"),
			Prefix:          os.Getenv("PROT3D_S3_PREFIX"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		},
		CachePath: os.Getenv("PROT3D_CACHE"),
	}
}

// Open builds the fetcher cfg describes. The returned function closes
// the cache, if there is one.
func Open(ctx context.Context, cfg Config) (Fetcher, func() error, error) {
	var f Fetcher
	source := "http"
	if cfg.S3.Bucket != "" {
		s3f, err := NewS3Fetcher(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		f, source = s3f, "s3"
	} else {
		f = NewHTTPFetcher(cfg.Site)
	}
	if cfg.CachePath == "" {
		return f, func() error { return nil }, nil
	}
	c, err := OpenCache(cfg.CachePath)
	if err != nil {
		return nil, nil, err
	}
	return &CachedFetcher{Cache: c, Next: f, Source: source}, c.Close, nil
}
