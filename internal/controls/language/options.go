package language

import "log/slog"

// Option configures a Control.
type Option func(*Control)

// WithLogger sets a custom logger for the Control.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Control) {
		c.logger = logger
	}
}

// WithLogHandler sets a custom log handler for the Control.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Control) {
		c.logger = slog.New(handler)
	}
}
