package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Prefix is prepended to the names of archived exports.
const Prefix = "exports/"

// Archive keeps a copy of every export.
type Archive interface {
	Store(ctx context.Context, f File) (string, error)
}

// FSArchive writes exports below a local directory.
type FSArchive struct {
	Dir string
}

// Store writes f to <Dir>/exports/<name> and returns the path.
func (a FSArchive) Store(_ context.Context, f File) (string, error) {
	dir := filepath.Join(a.Dir, filepath.FromSlash(Prefix))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	p := filepath.Join(dir, filepath.Base(f.Name))
	if err := os.WriteFile(p, f.Content, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return p, nil
}

// PutObjectAPI is the part of the S3 client used by S3Archive.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds the parameters of an S3 or S3-compatible archive.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
}

// S3Archive uploads exports to a bucket.
type S3Archive struct {
	client PutObjectAPI
	bucket string
}

// NewS3Archive wraps an existing client.
func NewS3Archive(client PutObjectAPI, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket}
}

// OpenS3Archive builds a client from the default AWS credential chain.
func OpenS3Archive(ctx context.Context, cfg S3Config) (*S3Archive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3Archive(client, cfg.Bucket), nil
}

// Store uploads f under exports/<name> and returns the s3:// URL.
func (a *S3Archive) Store(ctx context.Context, f File) (string, error) {
	key := path.Join(Prefix, path.Base(f.Name))
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(f.Content),
		ContentType: aws.String("text/csv; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	return "s3://" + a.bucket + "/" + key, nil
}
