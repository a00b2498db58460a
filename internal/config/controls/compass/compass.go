// Package compass holds the options for the bearing/compass control.
package compass

import (
	"github.com/atlanticdynamic/mapctl/internal/config/base"
)

// Label keys the compass control reads from Strings.
const (
	LabelResetBearing = "resetBearing"
)

// DefaultLabels are the built-in compass labels.
var DefaultLabels = map[string]string{
	LabelResetBearing: "Reset bearing to north",
}

// Options configures a compass control.
type Options struct {
	base.Options

	// Instant makes a bearing reset jump to north instead of animating. Nil means absent,
	// which animates.
	Instant *bool
}

// IsInstant reports whether resets skip the animation.
func (o *Options) IsInstant() bool {
	return o.Instant != nil && *o.Instant
}

// Equals compares two compass options.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Options.Equals(other.Options) && boolPtrEqual(o.Instant, other.Instant)
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
