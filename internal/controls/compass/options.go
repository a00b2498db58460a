package compass

import (
	"log/slog"

	"github.com/atlanticdynamic/mapctl/internal/config/button"
)

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

// WithButton overrides parts of the reset button. Empty fields keep the built-in icon and
// the localized title.
func WithButton(b button.Options) Option {
	return func(c *Control) {
		c.button = b
	}
}
