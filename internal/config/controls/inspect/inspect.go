// Package inspect holds the options for the map-data inspector control.
package inspect

import (
	"github.com/atlanticdynamic/mapctl/internal/config/base"
)

// Label keys the inspector reads from Strings.
const (
	LabelToggle     = "toggleInspector"
	LabelNoFeatures = "noFeatures"
)

// DefaultLabels are the built-in inspector labels.
var DefaultLabels = map[string]string{
	LabelToggle:     "Toggle inspector",
	LabelNoFeatures: "No features",
}

// Options configures an inspector control.
type Options struct {
	base.Options

	// Console additionally writes inspected features to the developer diagnostic
	// channel. Nil means absent, which is off.
	Console *bool
}

// LogsToConsole reports whether inspected features are mirrored to the console.
func (o *Options) LogsToConsole() bool {
	return o.Console != nil && *o.Console
}

// Validate checks the inspector options.
func (o *Options) Validate() error {
	return o.Options.Validate()
}

// Equals compares two inspector options.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	if (o.Console == nil) != (other.Console == nil) {
		return false
	}
	if o.Console != nil && *o.Console != *other.Console {
		return false
	}
	return o.Options.Equals(other.Options)
}
