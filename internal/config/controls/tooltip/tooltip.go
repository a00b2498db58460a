// Package tooltip holds the options for the hover/click tooltip control.
package tooltip

import (
	"context"
	"log/slog"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
)

// Point is a screen position in pixels.
type Point struct {
	X, Y float64
}

// LngLat is a geographic position.
type LngLat struct {
	Lng, Lat float64
}

// Feature is a rendered map feature under the pointer.
type Feature struct {
	ID         any
	Layer      string
	Properties map[string]any
}

// Event is a pointer event over the map, carrying the features under the pointer with
// the topmost first.
type Event struct {
	Point    Point
	LngLat   LngLat
	Features []Feature
}

// ContentFunc produces tooltip content for an event. It is called synchronously on
// hover or click.
type ContentFunc func(event Event) string

// Options configures a tooltip.
type Options struct {
	// GetContent is required.
	GetContent ContentFunc

	// GetContentScript is the source of GetContent when it was loaded from a
	// configuration file.
	GetContentScript *callbacks.Script

	// Layer restricts the tooltip to one layer. Empty means the whole map.
	Layer string
}

// Content applies GetContent, returning "" when none is set.
func (o *Options) Content(event Event) string {
	if o.GetContent == nil {
		return ""
	}
	return o.GetContent(event)
}

// Equals compares two tooltip options. Scripts are compared by source; a Go-supplied
// GetContent without a script is compared by presence only.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Layer == other.Layer &&
		callbacks.SameCallback(o.GetContentScript, o.GetContent != nil, other.GetContentScript, other.GetContent != nil)
}

// Map returns the event as plain values, the form a content script receives:
// point.x, point.y, lng_lat.lng, lng_lat.lat and features[].id, .layer, .properties.
func (e Event) Map() map[string]any {
	features := make([]any, len(e.Features))
	for i, f := range e.Features {
		props := f.Properties
		if props == nil {
			props = map[string]any{}
		}
		features[i] = map[string]any{
			"id":         f.ID,
			"layer":      f.Layer,
			"properties": props,
		}
	}
	return map[string]any{
		"point":    map[string]any{"x": e.Point.X, "y": e.Point.Y},
		"lng_lat":  map[string]any{"lng": e.LngLat.Lng, "lat": e.LngLat.Lat},
		"features": features,
	}
}

// ScriptContentFunc adapts a script into a ContentFunc. The script receives Event.Map
// as ctx and must return a string. When it fails, the failure is logged and the tooltip
// is left empty.
func ScriptContentFunc(script *callbacks.Script, logger *slog.Logger) ContentFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("tooltip").With("callback", "get_content")
	return func(event Event) string {
		content, err := script.CallString(context.Background(), event.Map())
		if err != nil {
			logger.Warn("Tooltip content script failed", "features", len(event.Features), "error", err)
			return ""
		}
		return content
	}
}
