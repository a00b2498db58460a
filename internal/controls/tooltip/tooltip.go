// Package tooltip models the tooltip control: on hover or click it decides whether the
// tooltip shows and asks the content callback what to show.
package tooltip

import (
	"log/slog"
	"sync"

	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/tooltip"
)

// Event is a pointer event over the map.
type Event = cfg.Event

// Control is a headless tooltip.
type Control struct {
	logger     *slog.Logger
	layer      string
	getContent cfg.ContentFunc

	mu      sync.Mutex
	visible bool
	content string
}

// New creates a tooltip. opts is required and must provide content.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger:     slog.Default().WithGroup("tooltip"),
		layer:      opts.Layer,
		getContent: opts.GetContent,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.getContent == nil {
		c.getContent = cfg.ScriptContentFunc(opts.GetContentScript, c.logger)
	}
	return c, nil
}

// Layer returns the layer the tooltip is bound to, or "" for the whole map.
func (c *Control) Layer() string {
	return c.layer
}

// Activate handles a hover or click. With a layer set, only features of that layer are
// passed on and the tooltip stays hidden when there are none. The content callback is
// called synchronously; its result is returned and kept until the next event.
func (c *Control) Activate(event Event) (string, bool) {
	if c.layer != "" {
		matched := make([]cfg.Feature, 0, len(event.Features))
		for _, f := range event.Features {
			if f.Layer == c.layer {
				matched = append(matched, f)
			}
		}
		if len(matched) == 0 {
			c.Deactivate()
			return "", false
		}
		event.Features = matched
	}

	content := c.getContent(event)

	c.mu.Lock()
	c.visible = true
	c.content = content
	c.mu.Unlock()
	return content, true
}

// Deactivate hides the tooltip, as when the pointer leaves the map or layer.
func (c *Control) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
	c.content = ""
}

// Visible returns the current content and whether the tooltip is shown.
func (c *Control) Visible() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content, c.visible
}
