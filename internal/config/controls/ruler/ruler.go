// Package ruler holds the options for the distance-measuring ruler control.
package ruler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/mapctl/internal/config/base"
	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	"github.com/atlanticdynamic/mapctl/internal/config/paint"
	"github.com/atlanticdynamic/mapctl/internal/config/units"
)

// Label keys the ruler control reads from Strings.
const (
	LabelMeasureDistance = "measureDistance"
)

// DefaultLabels are the built-in ruler labels.
var DefaultLabels = map[string]string{
	LabelMeasureDistance: "Measure distance",
}

// LabelFormatFunc renders a measured distance, expressed in the ruler's units, as the
// label shown next to a marker. It must be deterministic and free of side effects.
type LabelFormatFunc func(distance float64) string

// Options configures a ruler. The label format and every layout, paint and CSS bag are
// required and replace the control's styling in full.
type Options struct {
	base.Options

	// Units is the unit system distances are measured in. Unspecified leaves the choice
	// to the control, which uses units.Default.
	Units units.Units

	LabelFormat LabelFormatFunc

	// LabelFormatScript is the source of LabelFormat when it was loaded from a
	// configuration file.
	LabelFormatScript *callbacks.Script

	MarkerLayout paint.SymbolLayout
	MarkerPaint  paint.SymbolLayout
	MarkerCSS    paint.CSS
	LineLayout   paint.LineLayout
	LinePaint    paint.LinePaint
}

// Equals compares two ruler options. Scripts are compared by source; a Go-supplied label
// format without a script is compared by presence only.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Options.Equals(other.Options) &&
		o.Units == other.Units &&
		callbacks.SameCallback(o.LabelFormatScript, o.LabelFormat != nil, other.LabelFormatScript, other.LabelFormat != nil) &&
		o.MarkerLayout.Equals(other.MarkerLayout) &&
		o.MarkerPaint.Equals(other.MarkerPaint) &&
		o.MarkerCSS.Equals(other.MarkerCSS) &&
		o.LineLayout.Equals(other.LineLayout) &&
		o.LinePaint.Equals(other.LinePaint)
}

// FallbackLabel is used when a label script fails.
func FallbackLabel(distance float64) string {
	return fmt.Sprintf("%.2f", distance)
}

// ScriptLabelFormat adapts a script into a LabelFormatFunc. The script receives the
// distance as ctx["distance"] and must return a string. When it fails, the failure is
// logged and FallbackLabel is used.
func ScriptLabelFormat(script *callbacks.Script, logger *slog.Logger) LabelFormatFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("ruler").With("callback", "label_format")
	return func(distance float64) string {
		label, err := script.CallString(context.Background(), map[string]any{"distance": distance})
		if err != nil {
			logger.Warn("Label format script failed, using plain number",
				"distance", distance, "error", err)
			return FallbackLabel(distance)
		}
		return label
	}
}
