// Package base holds the option fields shared by most controls.
package base

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/labels"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
)

// KeyStrings is the key-value field holding the label overrides.
const KeyStrings = "strings"

// Options is embedded by every control whose labels can be overridden.
type Options struct {
	// Strings overrides built-in labels. Missing keys keep their defaults.
	Strings labels.Table
}

// Label returns the label for key, honoring overrides.
func (o Options) Label(key, fallback string) string {
	return o.Strings.Lookup(key, fallback)
}

// Validate checks the label table.
func (o Options) Validate() error {
	if err := o.Strings.Validate(); err != nil {
		return fmt.Errorf("strings: %w", err)
	}
	return nil
}

// Equals reports whether both hold the same label overrides.
func (o Options) Equals(other Options) bool {
	return o.Strings.Equals(other.Strings)
}

// Clone returns a deep copy.
func (o Options) Clone() Options {
	return Options{Strings: o.Strings.Clone()}
}

// WriteProto adds the shared fields to w.
func (o Options) WriteProto(w *protohelpers.Writer) {
	w.StringMap(KeyStrings, o.Strings)
}

// ReadProto reads the shared fields from r.
func ReadProto(r *protohelpers.Reader) Options {
	return Options{Strings: labels.Table(r.StringMap(KeyStrings))}
}
