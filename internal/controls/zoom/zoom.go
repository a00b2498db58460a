// Package zoom models the zoom control: two buttons stepping the zoom level within the
// map's bounds.
package zoom

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/mapctl/internal/config/button"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/zoom"
)

// Zoom level bounds and step.
const (
	MinZoom = 0.0
	MaxZoom = 24.0
	Step    = 1.0
)

// Control is a headless zoom control.
type Control struct {
	logger  *slog.Logger
	zoomIn  button.Options
	zoomOut button.Options

	mu   sync.Mutex
	zoom float64
}

// New creates a zoom control at zoom level 0. Nil opts use every default.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger: slog.Default().WithGroup("zoom"),
	}
	for _, opt := range options {
		opt(c)
	}

	var err error
	c.zoomIn, err = button.Resolve(c.zoomIn, button.Options{
		Title: opts.Label(cfg.LabelZoomIn, cfg.DefaultLabels[cfg.LabelZoomIn]),
		Text:  "+",
	})
	if err != nil {
		return nil, fmt.Errorf("zoom in: %w", err)
	}
	c.zoomOut, err = button.Resolve(c.zoomOut, button.Options{
		Title: opts.Label(cfg.LabelZoomOut, cfg.DefaultLabels[cfg.LabelZoomOut]),
		Text:  "−",
	})
	if err != nil {
		return nil, fmt.Errorf("zoom out: %w", err)
	}

	c.zoom = clamp(c.zoom)
	return c, nil
}

// Buttons describes the zoom in and zoom out buttons.
func (c *Control) Buttons() (zoomIn, zoomOut button.Options) {
	return c.zoomIn, c.zoomOut
}

// Zoom returns the current zoom level.
func (c *Control) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

// SetZoom sets the zoom level, clamped to the bounds, and returns the level applied.
func (c *Control) SetZoom(z float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = clamp(z)
	return c.zoom
}

// ZoomIn steps one level in and returns the new level.
func (c *Control) ZoomIn() float64 {
	return c.step(Step)
}

// ZoomOut steps one level out and returns the new level.
func (c *Control) ZoomOut() float64 {
	return c.step(-Step)
}

func (c *Control) step(delta float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = clamp(c.zoom + delta)
	c.logger.Debug("Zoom changed", "zoom", c.zoom)
	return c.zoom
}

func clamp(z float64) float64 {
	return min(max(z, MinZoom), MaxZoom)
}
