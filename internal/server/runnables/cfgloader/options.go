package cfgloader

import (
	"context"
	"log/slog"

	"github.com/atlanticdynamic/mapctl/internal/config/loader"
)

type Option func(*Runner)

// WithLogger sets a custom logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithLogHandler sets a custom log handler for the Runner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		r.logger = slog.New(handler)
	}
}

// WithContext sets a custom parent context for the Runner instance.
func WithContext(ctx context.Context) Option {
	return func(r *Runner) {
		r.parentCtx = ctx
	}
}

// WithS3Options passes options to the S3 loader, used when the location is an s3:// URI.
func WithS3Options(opts ...loader.S3Option) Option {
	return func(r *Runner) {
		r.s3Opts = append(r.s3Opts, opts...)
	}
}
