package s3x

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
)

func testUploader() *Uploader {
	return NewUploader(Options{
		Bucket:       "backfills",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
	}, logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestArtifactKey_Format(t *testing.T) {
	key := ArtifactKey()
	re := regexp.MustCompile(`^backfills/\d{4}/\d{1,2}/\d{1,2}/[0-9a-f-]{36}\.sql$`)
	if !re.MatchString(key) {
		t.Fatalf("unexpected key format: %q", key)
	}
	if key == ArtifactKey() {
		t.Fatalf("two keys should never collide")
	}
}

func Test_getClient_AppliesRegionEndpointCreds(t *testing.T) {
	u := testUploader()

	origLoad, origNewS3 := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		creds, err := lo.Credentials.Retrieve(ctx)
		if err != nil {
			t.Fatalf("retrieve creds: %v", err)
		}
		if creds.AccessKeyID != "minioadmin" {
			t.Fatalf("static creds not applied: %q", creds.AccessKeyID)
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil {
			t.Fatalf("BaseEndpoint not set")
		}
		capturedBaseEndpoint = *opts.BaseEndpoint
		return &s3.Client{}
	}

	client, err := u.getClient(context.Background())
	if err != nil {
		t.Fatalf("getClient err: %v", err)
	}
	if client == nil {
		t.Fatalf("nil client")
	}
	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}
}

func Test_getClient_NoEndpointOverrideForAWS(t *testing.T) {
	u := testUploader()
	u.opts.BaseEndpoint = ""

	origLoad, origNewS3 := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint != nil {
			t.Fatalf("BaseEndpoint should stay unset, got %q", *opts.BaseEndpoint)
		}
		return &s3.Client{}
	}

	if _, err := u.getClient(context.Background()); err != nil {
		t.Fatalf("getClient err: %v", err)
	}
}

func TestUpload_Success(t *testing.T) {
	u := testUploader()

	origLoad, origNewS3, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }

	var gotBucket, gotKey, gotBody string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		b, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		gotBody = string(b)
		return &s3.PutObjectOutput{}, nil
	}

	uri, err := u.Upload(context.Background(), "backfills/2025/7/21/x.sql", []byte("INSERT ..."))
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if uri != "s3://backfills/backfills/2025/7/21/x.sql" {
		t.Fatalf("unexpected uri: %q", uri)
	}
	if gotBucket != "backfills" || gotKey != "backfills/2025/7/21/x.sql" || gotBody != "INSERT ..." {
		t.Fatalf("unexpected put: bucket=%q key=%q body=%q", gotBucket, gotKey, gotBody)
	}
}

func TestUpload_PutError(t *testing.T) {
	u := testUploader()

	origLoad, origNewS3, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("put-fail")
	}

	_, err := u.Upload(context.Background(), "k", []byte("x"))
	if err == nil || !strings.Contains(err.Error(), "put object k") {
		t.Fatalf("want wrapped put error, got %v", err)
	}
}

func TestUpload_LoadConfigError(t *testing.T) {
	u := testUploader()

	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := u.Upload(context.Background(), "k", []byte("x"))
	if err == nil || !strings.Contains(err.Error(), "load-fail") {
		t.Fatalf("want load-fail, got %v", err)
	}
}
