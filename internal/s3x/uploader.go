// Package s3x archives generated SQL artifacts to an S3-compatible bucket,
// so every applied backfill stays retrievable alongside the database it
// changed. Works against AWS or MinIO via a base endpoint override.
package s3x

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// Options configures the bucket and how to reach it. BaseEndpoint is empty
// for AWS proper; point it at MinIO or another compatible store otherwise.
type Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// Uploader puts artifacts into one bucket.
type Uploader struct {
	opts Options
	log  logging.Logger
}

func NewUploader(opts Options, log logging.Logger) *Uploader {
	return &Uploader{opts: opts, log: log}
}

// ArtifactKey returns a date-partitioned object key for one run's artifact.
func ArtifactKey() string {
	d := time.Now()
	return fmt.Sprintf("backfills/%d/%d/%d/%v.sql", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (u *Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.opts.AccessKey,
			u.opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.opts.BaseEndpoint)
		}
	})

	return client, nil
}

// Upload stores body under key and returns the object's s3:// address.
func (u *Uploader) Upload(ctx context.Context, key string, body []byte) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 client: %w", err)
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &u.opts.Bucket,
		Key:    &key,
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", u.opts.Bucket, key)
	u.log.Info(ctx, "artifact uploaded", "uri", uri, "bytes", len(body))
	return uri, nil
}
