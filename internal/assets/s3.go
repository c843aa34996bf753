package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the settings for an S3-compatible bucket (AWS, R2, MinIO).
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
	TTL       time.Duration
}

// S3Resolver presigns GET URLs for images stored in a bucket.
type S3Resolver struct {
	presign *s3.PresignClient
	bucket  string
	prefix  string
	ttl     time.Duration
}

// NewS3Resolver builds a resolver from static credentials.
func NewS3Resolver(ctx context.Context, cfg S3Config) (*S3Resolver, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3Resolver(awsCfg, cfg), nil
}

func newS3Resolver(awsCfg aws.Config, cfg S3Config) *S3Resolver {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &S3Resolver{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		ttl:     ttl,
	}
}

// Resolve presigns a GET for the image. Absolute URLs pass through untouched.
func (r *S3Resolver) Resolve(ctx context.Context, img Image) (Source, error) {
	if strings.HasPrefix(img.Path, "http://") || strings.HasPrefix(img.Path, "https://") {
		return Source{Image: img, URL: img.Path}, nil
	}

	key := objectKey(r.prefix, img.Path)
	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return Source{}, fmt.Errorf("presign %s: %w", key, err)
	}
	return Source{Image: img, URL: req.URL}, nil
}
