package loader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Scheme prefixes configuration locations stored in S3.
const S3Scheme = "s3://"

// ObjectGetter is the part of the S3 client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Option configures NewLoaderFromS3.
type S3Option func(*s3Source)

type s3Source struct {
	client ObjectGetter
	region string
	format string
}

// WithS3Client uses client instead of one built from the default AWS configuration.
func WithS3Client(client ObjectGetter) S3Option {
	return func(s *s3Source) {
		s.client = client
	}
}

// WithS3Region sets the region used when building the default client.
func WithS3Region(region string) S3Option {
	return func(s *s3Source) {
		s.region = region
	}
}

// WithS3Format overrides the format otherwise taken from the object key extension.
func WithS3Format(format string) S3Option {
	return func(s *s3Source) {
		s.format = format
	}
}

// IsS3URI reports whether location names an S3 object.
func IsS3URI(location string) bool {
	return strings.HasPrefix(location, S3Scheme)
}

// ParseS3URI splits s3://bucket/key into its bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidS3URI, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidS3URI, uri)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%w: missing object key in %s", ErrInvalidS3URI, uri)
	}
	return u.Host, key, nil
}

// NewLoaderFromS3 fetches s3://bucket/key and returns a Loader for its contents. Without
// WithS3Client, credentials come from the default AWS configuration chain and the region
// from WithS3Region, then AWS_REGION, then us-east-1.
func NewLoaderFromS3(ctx context.Context, uri string, opts ...S3Option) (Loader, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}

	src := &s3Source{}
	for _, opt := range opts {
		opt(src)
	}

	var lodFunc LoaderFunc
	if src.format != "" {
		lodFunc, err = ForFormat(src.format)
	} else {
		lodFunc, err = ForExtension(path.Ext(key))
	}
	if err != nil {
		return nil, withLocation(err, uri)
	}

	if src.client == nil {
		region := src.region
		if region == "" {
			region = os.Getenv("AWS_REGION")
		}
		if region == "" {
			region = "us-east-1"
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		src.client = s3.NewFromConfig(cfg)
	}

	out, err := src.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchS3Object, uri, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchS3Object, uri, err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}
