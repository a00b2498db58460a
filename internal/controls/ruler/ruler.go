// Package ruler models the ruler control: it collects the measured points and labels
// distances with the configured format. Computing distances is left to the caller.
package ruler

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/atlanticdynamic/mapctl/internal/config/button"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/ruler"
	"github.com/atlanticdynamic/mapctl/internal/config/paint"
	"github.com/atlanticdynamic/mapctl/internal/config/units"
)

// Point is a measured position.
type Point struct {
	Lng, Lat float64
}

// Control is a headless ruler.
type Control struct {
	logger *slog.Logger

	units        units.Units
	labelFormat  cfg.LabelFormatFunc
	button       button.Options
	markerLayout paint.SymbolLayout
	markerPaint  paint.SymbolLayout
	markerCSS    paint.CSS
	lineLayout   paint.LineLayout
	linePaint    paint.LinePaint

	mu        sync.Mutex
	measuring bool
	points    []Point
}

// New creates a ruler. opts is required and must carry a label format and every
// layout, paint and CSS bag.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger:       slog.Default().WithGroup("ruler"),
		units:        opts.Units.OrDefault(),
		labelFormat:  opts.LabelFormat,
		markerLayout: opts.MarkerLayout.Clone(),
		markerPaint:  opts.MarkerPaint.Clone(),
		markerCSS:    opts.MarkerCSS.Clone(),
		lineLayout:   opts.LineLayout.Clone(),
		linePaint:    opts.LinePaint.Clone(),
	}
	if c.labelFormat == nil {
		c.labelFormat = cfg.ScriptLabelFormat(opts.LabelFormatScript, c.logger)
	}
	for _, opt := range options {
		opt(c)
	}

	btn, err := button.Resolve(c.button, button.Options{
		Title: opts.Label(cfg.LabelMeasureDistance, cfg.DefaultLabels[cfg.LabelMeasureDistance]),
	})
	if err != nil {
		return nil, err
	}
	c.button = btn
	return c, nil
}

// Units returns the unit system distances are given in.
func (c *Control) Units() units.Units {
	return c.units
}

// Button describes the measuring toggle.
func (c *Control) Button() button.Options {
	return c.button
}

// Start begins a new measurement, discarding previous points.
func (c *Control) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.measuring = true
	c.points = nil
}

// Stop ends the measurement and clears the points.
func (c *Control) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.measuring = false
	c.points = nil
}

// Measuring reports whether a measurement is in progress.
func (c *Control) Measuring() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.measuring
}

// AddPoint appends a point to the measurement. It reports false when no measurement is
// in progress.
func (c *Control) AddPoint(p Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.measuring {
		return false
	}
	c.points = append(c.points, p)
	return true
}

// Points returns a copy of the measured points.
func (c *Control) Points() []Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.points)
}

// Label formats a distance for display.
func (c *Control) Label(distance float64) string {
	return c.labelFormat(distance)
}

// Labels formats the cumulative distance at each point, as shown next to the markers.
func (c *Control) Labels(distances []float64) []string {
	out := make([]string, len(distances))
	for i, d := range distances {
		out[i] = c.Label(d)
	}
	return out
}

// MarkerLayout returns a copy of the marker symbol layout.
func (c *Control) MarkerLayout() paint.SymbolLayout { return c.markerLayout.Clone() }

// MarkerPaint returns a copy of the marker symbol paint.
func (c *Control) MarkerPaint() paint.SymbolLayout { return c.markerPaint.Clone() }

// MarkerCSS returns a copy of the marker element style.
func (c *Control) MarkerCSS() paint.CSS { return c.markerCSS.Clone() }

// LineLayout returns a copy of the line layout.
func (c *Control) LineLayout() paint.LineLayout { return c.lineLayout.Clone() }

// LinePaint returns a copy of the line paint.
func (c *Control) LinePaint() paint.LinePaint { return c.linePaint.Clone() }
