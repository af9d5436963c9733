package fetch

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config holds connection settings for an S3-compatible object store.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// S3Fetcher serves s3://bucket/key URLs from an S3-compatible store.
type S3Fetcher struct {
	client *minio.Client
}

func NewS3Fetcher(cfg S3Config) (*S3Fetcher, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("fetch: s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("fetch: s3 access key and secret key are required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch: init s3 client: %w", err)
	}
	return &S3Fetcher{client: client}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f == nil || f.client == nil {
		return "", fmt.Errorf("fetch: s3 fetcher is not configured")
	}
	bucket, key, err := splitS3URL(rawURL)
	if err != nil {
		return "", err
	}
	obj, err := f.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", &TransportError{URL: rawURL, Err: err}
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		// minio surfaces missing keys and access failures on first read.
		if resp := minio.ToErrorResponse(err); resp.StatusCode != 0 {
			return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
		}
		return "", &TransportError{URL: rawURL, Err: err}
	}
	return string(body), nil
}

func splitS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch: parse s3 url: %w", err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("fetch: s3 url %q must be s3://bucket/key", rawURL)
	}
	return bucket, key, nil
}
