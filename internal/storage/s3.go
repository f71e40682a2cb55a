// Package storage - s3.go provides the S3-backed artifact reader.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Reader fetches delivered artifacts from an S3 bucket.
type S3Reader struct {
	client *s3.Client
	bucket string
}

// Credentials holds the static keys handed to the provider for delivery and
// used locally for reads.
type Credentials struct {
	AccessKey string
	SecretKey string
	Region    string
}

// NewS3Reader builds an S3 reader for the bucket. Static credentials take
// precedence; with none set the default AWS credential chain applies.
func NewS3Reader(ctx context.Context, bucket string, creds Credentials) (*S3Reader, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if creds.Region != "" {
		opts = append(opts, awsconfig.WithRegion(creds.Region))
	}
	if creds.AccessKey != "" && creds.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Reader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Bucket returns the bucket the reader is bound to.
func (r *S3Reader) Bucket() string {
	return r.bucket
}

// Fetch reads the artifact at the given object key.
func (r *S3Reader) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artifact %s: %w", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", key, err)
	}
	return data, nil
}
