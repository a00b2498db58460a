package styles

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

// WithInitialStyle marks the named style active without notifying OnChange, as when the
// map was created with that style.
func WithInitialStyle(styleName string) Option {
	return func(c *Control) {
		c.initial = styleName
	}
}
