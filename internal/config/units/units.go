// Package units enumerates the measurement unit systems a ruler can display.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUnits is returned for an unknown unit system.
var ErrInvalidUnits = errors.New("invalid units")

// Units names a measurement unit system. The zero value leaves the choice to the control.
type Units string

// Supported unit systems, matching the names used by common geometry libraries.
const (
	Unspecified   Units = ""
	Meters        Units = "meters"
	Metres        Units = "metres"
	Millimeters   Units = "millimeters"
	Millimetres   Units = "millimetres"
	Centimeters   Units = "centimeters"
	Centimetres   Units = "centimetres"
	Kilometers    Units = "kilometers"
	Kilometres    Units = "kilometres"
	Miles         Units = "miles"
	NauticalMiles Units = "nauticalmiles"
	Inches        Units = "inches"
	Yards         Units = "yards"
	Feet          Units = "feet"
	Radians       Units = "radians"
	Degrees       Units = "degrees"
)

// Default is what a ruler uses when no unit system is configured.
const Default = Kilometers

var all = []Units{
	Meters, Metres, Millimeters, Millimetres, Centimeters, Centimetres,
	Kilometers, Kilometres, Miles, NauticalMiles, Inches, Yards, Feet, Radians, Degrees,
}

// All returns every named unit system.
func All() []Units {
	out := make([]Units, len(all))
	copy(out, all)
	return out
}

// String returns the string representation of Units.
func (u Units) String() string {
	if u == Unspecified {
		return "unspecified"
	}
	return string(u)
}

// IsValid reports whether u is Unspecified or a named unit system.
func (u Units) IsValid() bool {
	if u == Unspecified {
		return true
	}
	for _, known := range all {
		if u == known {
			return true
		}
	}
	return false
}

// OrDefault returns u, or Default when u is Unspecified.
func (u Units) OrDefault() Units {
	if u == Unspecified {
		return Default
	}
	return u
}

// FromString parses a unit system name, case-insensitively. "nautical miles" and
// "nautical_miles" are accepted for NauticalMiles.
func FromString(s string) (Units, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalized)
	if normalized == "" {
		return Unspecified, nil
	}
	u := Units(normalized)
	if !u.IsValid() {
		return Unspecified, fmt.Errorf("%w: %s", ErrInvalidUnits, s)
	}
	return u, nil
}
