package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/andrew-torda/prot3d/pdb/metrics"
	"github.com/andrew-torda/prot3d/pdb/perr"
)

// S3Config says where a mirror of the PDB lives. Objects are called
// Prefix + code + Suffix, like "pdb/1abc.pdb.gz".
type S3Config struct {
	Bucket          string
	Region          string // default us-east-1
	Endpoint        string // for MinIO and friends
	PathStyle       bool
	Prefix          string
	Suffix          string // default ".pdb.gz"
	AccessKeyID     string // if empty, the default credentials chain
	SecretAccessKey string
	SessionToken    string
	HTTPClient      *http.Client // only for tests
}

// S3Fetcher gets files from an S3 bucket.
type S3Fetcher struct {
	client *s3.Client
	bucket string
	prefix string
	suffix string
}

// NewS3Fetcher sets up a client. Nothing is sent over the network until
// the first Fetch.
func NewS3Fetcher(ctx context.Context, cfg S3Config) (*S3Fetcher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = ".pdb.gz"
	}
	return &S3Fetcher{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, suffix: suffix}, nil
}

// Key is the object name for a code.
func (f *S3Fetcher) Key(code string) string { return f.prefix + code + f.suffix }

// Fetch gets one object. A missing key is a NotFoundError.
func (f *S3Fetcher) Fetch(ctx context.Context, code string) ([]byte, error) {
	code, err := checkCode(code)
	if err != nil {
		return nil, err
	}
	b, err := f.fetch(ctx, code)
	metrics.Fetch("s3", outcome(err))
	return b, err
}

func (f *S3Fetcher) fetch(ctx context.Context, code string) ([]byte, error) {
	key := f.Key(code)
	src := "s3://" + f.bucket + "/" + key
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &f.bucket, Key: &key})
	if err != nil {
		var nsk *types.NoSuchKey
		var re *awshttp.ResponseError
		if errors.As(err, &nsk) || (errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound) {
			return nil, &perr.NotFoundError{ID: code, Source: src, Err: err}
		}
		return nil, fmt.Errorf("getting %s: %w", src, err)
	}
	defer out.Body.Close()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	if len(b) == 0 {
		return nil, &perr.NotFoundError{ID: code, Source: src, Err: errEmpty}
	}
	return b, nil
}
