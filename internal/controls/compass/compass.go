// Package compass models the compass control: a button that shows the map bearing and
// resets it to north.
package compass

import (
	"log/slog"
	"math"
	"sync"

	"github.com/atlanticdynamic/mapctl/internal/config/button"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/compass"
)

// Transition describes a bearing change the map should apply.
type Transition struct {
	From    float64
	To      float64
	Animate bool
}

// DefaultIcon is the built-in needle.
const DefaultIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M12 2l4 10h-8z" fill="#e53935"/><path d="M12 22l-4-10h8z" fill="#90a4ae"/></svg>`

// Control is a headless compass.
type Control struct {
	logger  *slog.Logger
	instant bool
	button  button.Options

	mu      sync.Mutex
	bearing float64
}

// New creates a compass from opts. Nil opts use every default.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger:  slog.Default().WithGroup("compass"),
		instant: opts.IsInstant(),
	}
	for _, opt := range options {
		opt(c)
	}

	builtin := button.Options{
		Icon:  DefaultIcon,
		Title: opts.Label(cfg.LabelResetBearing, cfg.DefaultLabels[cfg.LabelResetBearing]),
	}
	btn, err := button.Resolve(c.button, builtin)
	if err != nil {
		return nil, err
	}
	c.button = btn
	return c, nil
}

// Title returns the reset button title.
func (c *Control) Title() string {
	return c.button.Title
}

// Button describes the reset button.
func (c *Control) Button() button.Options {
	return c.button
}

// SetBearing records the map bearing, normalized to (-180, 180].
func (c *Control) SetBearing(bearing float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearing = normalize(bearing)
}

// Bearing returns the last recorded bearing.
func (c *Control) Bearing() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bearing
}

// NeedleRotation is the rotation in degrees that keeps the needle pointing north.
func (c *Control) NeedleRotation() float64 {
	return -c.Bearing()
}

// ResetBearing returns the transition back to north from the recorded bearing, and
// records north as the new bearing. The transition animates unless the control is
// instant.
func (c *Control) ResetBearing() Transition {
	c.mu.Lock()
	from := c.bearing
	c.bearing = 0
	c.mu.Unlock()

	t := Transition{From: from, To: 0, Animate: !c.instant}
	c.logger.Debug("Resetting bearing", "from", t.From, "animate", t.Animate)
	return t
}

func normalize(bearing float64) float64 {
	b := math.Mod(bearing, 360)
	switch {
	case b > 180:
		b -= 360
	case b <= -180:
		b += 360
	}
	return b
}
