// Package storage uploads proof-of-payment images to S3-compatible
// object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	myconfig "hexachats_server/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader is the narrow interface the order service depends on.
type Uploader interface {
	PutProof(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// S3Store implements Uploader over the AWS SDK.
type S3Store struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

// NewS3Store loads the default AWS credential chain and builds the store.
func NewS3Store(ctx context.Context, cfg *myconfig.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Store{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// PutProof stores the image and returns the full object key.
func (s *S3Store) PutProof(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	fullKey := path.Join(s.keyPrefix, key)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fullKey),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", fullKey, err)
	}
	return fullKey, nil
}

var _ Uploader = (*S3Store)(nil)
