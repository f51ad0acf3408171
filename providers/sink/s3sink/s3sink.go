// Package s3sink stores report artifacts in S3-compatible object storage
// (AWS S3, MinIO) under <prefix>/<runID>/<file name>.
package s3sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/leofalp/llmreport/providers/sink"
)

// Config holds connection settings. Endpoint is host[:port] without scheme.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// Sink writes artifacts as objects. The bucket is created on first use.
type Sink struct {
	client *minio.Client
	bucket string
	region string
	prefix string

	initOnce sync.Once
	initErr  error
}

var _ sink.Sink = (*Sink)(nil)

// New validates cfg and builds the client. No request is made until the
// first Save.
func New(cfg Config) (*Sink, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3sink: endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3sink: access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3sink: bucket is required")
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
		return nil, fmt.Errorf("s3sink: init client: %w", err)
	}

	return &Sink{
		client: client,
		bucket: bucket,
		region: region,
		prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
	}, nil
}

func (s *Sink) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Save uploads the artifact and returns an s3:// URL for it.
func (s *Sink) Save(ctx context.Context, artifact sink.Artifact) (string, error) {
	if err := artifact.Validate(); err != nil {
		return "", err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("s3sink: ensure bucket %s: %w", s.bucket, err)
	}

	content := artifact.Content
	if content == nil {
		content = []byte{}
	}

	key := s.objectKey(artifact)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: artifact.Kind.ContentType(),
		UserMetadata: map[string]string{
			"run-id": artifact.RunID,
			"kind":   string(artifact.Kind),
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3sink: put %s: %w", key, err)
	}

	return "s3://" + s.bucket + "/" + key, nil
}

func (s *Sink) objectKey(artifact sink.Artifact) string {
	key := strings.Trim(strings.TrimSpace(artifact.RunID), "/") + "/" + artifact.Kind.FileName()
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}
