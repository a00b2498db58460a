// Package paint holds stand-in shapes for the layout, paint and CSS property bags a map
// renderer consumes. Values are opaque to this module; they only need to survive the
// trip through the key-value representation.
package paint

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"

	"google.golang.org/protobuf/types/known/structpb"
)

var (
	// ErrEmptyProperty is returned for a property with an empty name.
	ErrEmptyProperty = errors.New("empty property name")

	// ErrUnsupportedValue is returned for a value with no key-value representation.
	ErrUnsupportedValue = errors.New("unsupported property value")

	// ErrInvalidCSSProperty is returned for a CSS key that is not a property name.
	ErrInvalidCSSProperty = errors.New("invalid CSS property name")
)

// Properties is a bag of renderer style properties, such as "line-color" or "icon-image".
type Properties map[string]any

// SymbolLayout describes symbol placement (icons and text).
type SymbolLayout = Properties

// LineLayout describes line geometry options such as caps and joins.
type LineLayout = Properties

// LinePaint describes line colors, widths and dashes.
type LinePaint = Properties

// CSS is a partial inline style declaration. Keys are CSS property names, kebab-case
// ("background-color") or camelCase ("backgroundColor").
type CSS = Properties

var cssPropertyPattern = regexp.MustCompile(`^(--[A-Za-z0-9_-]+|-?[a-z][a-z0-9]*(-[a-z0-9]+)*|[a-z][A-Za-z0-9]*)$`)

// Validate checks that every key is named and every value has a key-value representation.
func (p Properties) Validate() error {
	var errs []error
	for _, k := range p.Keys() {
		if k == "" {
			errs = append(errs, ErrEmptyProperty)
			continue
		}
		if _, err := structpb.NewValue(normalize(p[k])); err != nil {
			errs = append(errs, fmt.Errorf("%w: '%s': %w", ErrUnsupportedValue, k, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateCSS runs Validate and also checks that every key is a CSS property name.
func (p Properties) ValidateCSS() error {
	errs := []error{p.Validate()}
	for _, k := range p.Keys() {
		if k != "" && !cssPropertyPattern.MatchString(k) {
			errs = append(errs, fmt.Errorf("%w: '%s'", ErrInvalidCSSProperty, k))
		}
	}
	return errors.Join(errs...)
}

// Keys returns the property names in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Get returns the value of a property and whether it is set.
func (p Properties) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Clone returns a deep copy, preserving nil.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

// Equals compares both bags after normalizing numbers to float64, which is how values
// come back from the key-value representation.
func (p Properties) Equals(other Properties) bool {
	if (p == nil) != (other == nil) || len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !reflect.DeepEqual(normalize(v), normalize(ov)) {
			return false
		}
	}
	return true
}

// Map returns the bag as a plain map with normalized values, ready for structpb.
func (p Properties) Map() map[string]any {
	if p == nil {
		return nil
	}
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = normalize(v)
	}
	return out
}

// String returns a concise summary.
func (p Properties) String() string {
	return fmt.Sprintf("%d properties", len(p))
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	case []float64:
		return slices.Clone(t)
	default:
		return v
	}
}

// normalize converts the typed slices and integer kinds decoders produce into the shapes
// structpb hands back, so that equality survives a round-trip.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalize(item)
		}
		return out
	default:
		return v
	}
}
