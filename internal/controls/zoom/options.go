package zoom

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

// WithZoom sets the initial zoom level.
func WithZoom(z float64) Option {
	return func(c *Control) {
		c.zoom = z
	}
}

// WithButtons overrides parts of the zoom in and zoom out buttons.
func WithButtons(zoomIn, zoomOut button.Options) Option {
	return func(c *Control) {
		c.zoomIn = zoomIn
		c.zoomOut = zoomOut
	}
}
