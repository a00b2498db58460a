package config

import (
	"context"
	"fmt"
	"io"

	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"github.com/atlanticdynamic/mapctl/internal/config/loader"
)

// Top-level errors, re-exported for callers outside the config tree.
var (
	ErrFailedToLoadConfig     = errz.ErrFailedToLoadConfig
	ErrFailedToConvertConfig  = errz.ErrFailedToConvertConfig
	ErrFailedToValidateConfig = errz.ErrFailedToValidateConfig
	ErrUnsupportedConfigVer   = errz.ErrUnsupportedConfigVer
)

// NewConfig loads configuration from a TOML or YAML file
func NewConfig(filePath string) (*Config, error) {
	ld, err := loader.NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromBytes loads configuration from bytes in the named format ("toml" or "yaml")
func NewConfigFromBytes(data []byte, format string) (*Config, error) {
	lodFunc, err := loader.ForFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	ld, err := loader.NewLoaderFromBytes(data, lodFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromReader loads configuration from an io.Reader in the named format
func NewConfigFromReader(reader io.Reader, format string) (*Config, error) {
	lodFunc, err := loader.ForFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	ld, err := loader.NewLoaderFromReader(reader, lodFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromS3 loads configuration from an s3://bucket/key location
func NewConfigFromS3(ctx context.Context, uri string, opts ...loader.S3Option) (*Config, error) {
	ld, err := loader.NewLoaderFromS3(ctx, uri, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromLocation loads from S3 for s3:// locations and from the file system
// otherwise
func NewConfigFromLocation(ctx context.Context, location string) (*Config, error) {
	if loader.IsS3URI(location) {
		return NewConfigFromS3(ctx, location)
	}
	return NewConfig(location)
}

func fromLoader(ld loader.Loader) (*Config, error) {
	pb, err := ld.LoadProto()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := NewFromProto(pb)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}
	return cfg, nil
}
