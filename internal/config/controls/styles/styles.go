// Package styles holds the options for the style switcher control.
package styles

import (
	"context"
	"log/slog"
	"slices"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
)

// Item describes one selectable map style.
type Item struct {
	Label     string
	StyleName string
	// StyleURL may reference the environment as ${VAR} or ${VAR:default}. Validate
	// expands it in place.
	StyleURL string `env_interpolation:"yes"`

	// sourceURL is StyleURL as written, kept once Validate expanded a reference.
	sourceURL string
}

// SourceURL returns the style URL as written in the configuration, before expansion.
func (i Item) SourceURL() string {
	if i.sourceURL != "" {
		return i.sourceURL
	}
	return i.StyleURL
}

// Equals compares two items by their written form. When both were expanded, the
// expanded URLs must match too, so a changed environment makes them differ.
func (i Item) Equals(other Item) bool {
	if i.Label != other.Label || i.StyleName != other.StyleName || i.SourceURL() != other.SourceURL() {
		return false
	}
	if i.sourceURL != "" && other.sourceURL != "" {
		return i.StyleURL == other.StyleURL
	}
	return true
}

// ChangeFunc is notified after the active style changed, with the newly active item. Its
// outcome is not observed by the control.
type ChangeFunc func(item Item)

// Options configures a style switcher.
type Options struct {
	// Styles lists the selectable styles in display order. An empty list is valid and
	// leaves the switcher with nothing to offer.
	Styles []Item

	OnChange ChangeFunc

	// OnChangeScript is the source of OnChange when it was loaded from a configuration
	// file.
	OnChangeScript *callbacks.Script
}

// Find returns the index of the first item named styleName, or -1.
func (o *Options) Find(styleName string) int {
	return slices.IndexFunc(o.Styles, func(item Item) bool {
		return item.StyleName == styleName
	})
}

// Equals compares two style options. Scripts are compared by source; a Go-supplied
// OnChange without a script is compared by presence only.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return slices.EqualFunc(o.Styles, other.Styles, Item.Equals) &&
		callbacks.SameCallback(o.OnChangeScript, o.OnChange != nil, other.OnChangeScript, other.OnChange != nil)
}

// ScriptChangeFunc adapts a script into a ChangeFunc. The script receives the item as
// ctx["label"], ctx["style_name"] and ctx["style_url"]; its result is ignored. Failures
// are logged.
func ScriptChangeFunc(script *callbacks.Script, logger *slog.Logger) ChangeFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("styles").With("callback", "on_change")
	return func(item Item) {
		_, err := script.Call(context.Background(), map[string]any{
			KeyLabel:     item.Label,
			KeyStyleName: item.StyleName,
			KeyStyleURL:  item.StyleURL,
		})
		if err != nil {
			logger.Warn("Style change script failed", "style", item.StyleName, "error", err)
		}
	}
}
