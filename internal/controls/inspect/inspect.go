// Package inspect models the map-data inspector: a toggle that, while on, captures the
// features under the pointer and optionally mirrors them to a diagnostic console.
package inspect

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/atlanticdynamic/mapctl/internal/config/button"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/inspect"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/tooltip"
)

// Feature is a rendered map feature.
type Feature = tooltip.Feature

// Control is a headless inspector.
type Control struct {
	logger  *slog.Logger
	console *slog.Logger

	button         button.Options
	noFeaturesText string
	logsToConsole  bool

	mu        sync.Mutex
	active    bool
	selection []Feature
}

// New creates an inspector from opts. Nil opts use every default.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger:         slog.Default().WithGroup("inspect"),
		console:        slog.Default(),
		noFeaturesText: opts.Label(cfg.LabelNoFeatures, cfg.DefaultLabels[cfg.LabelNoFeatures]),
		logsToConsole:  opts.LogsToConsole(),
	}
	for _, opt := range options {
		opt(c)
	}

	btn, err := button.Resolve(c.button, button.Options{
		Title: opts.Label(cfg.LabelToggle, cfg.DefaultLabels[cfg.LabelToggle]),
	})
	if err != nil {
		return nil, err
	}
	c.button = btn
	return c, nil
}

// Button describes the toggle button.
func (c *Control) Button() button.Options {
	return c.button
}

// NoFeaturesText is shown when nothing is under the pointer.
func (c *Control) NoFeaturesText() string {
	return c.noFeaturesText
}

// Toggle switches the inspector on or off and returns the new state. Switching off
// clears the selection.
func (c *Control) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = !c.active
	if !c.active {
		c.selection = nil
	}
	c.logger.Debug("Inspector toggled", "active", c.active)
	return c.active
}

// Active reports whether the inspector is on.
func (c *Control) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Inspect records features as the current selection and returns a copy of it. While the
// inspector is off nothing is recorded. With console output enabled, each feature is
// logged to the console handler.
func (c *Control) Inspect(ctx context.Context, features []Feature) []Feature {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil
	}
	c.selection = cloneFeatures(features)
	selection := cloneFeatures(c.selection)
	c.mu.Unlock()

	if c.logsToConsole {
		for _, f := range selection {
			c.console.InfoContext(ctx, "Inspected feature",
				"id", f.ID, "layer", f.Layer, "properties", f.Properties)
		}
		if len(selection) == 0 {
			c.console.InfoContext(ctx, c.noFeaturesText)
		}
	}
	return selection
}

// Selection returns a copy of the last inspected features.
func (c *Control) Selection() []Feature {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneFeatures(c.selection)
}

func cloneFeatures(in []Feature) []Feature {
	if in == nil {
		return nil
	}
	out := make([]Feature, len(in))
	for i, f := range in {
		out[i] = Feature{ID: f.ID, Layer: f.Layer, Properties: maps.Clone(f.Properties)}
	}
	return out
}
