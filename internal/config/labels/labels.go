// Package labels holds the localized label table that controls accept as a sparse
// override of their built-in strings.
package labels

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrEmptyKey is returned when a label table contains an empty key.
var ErrEmptyKey = errors.New("empty label key")

// Table maps opaque label keys to display strings. A missing key means "use the
// built-in default", so a Table never needs to be complete.
type Table map[string]string

// Lookup returns the override for key, or fallback when the table has none.
func (t Table) Lookup(key, fallback string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return fallback
}

// Merge returns defaults with every key in t applied on top. Neither input is modified.
func (t Table) Merge(defaults map[string]string) Table {
	out := make(Table, len(defaults)+len(t))
	maps.Copy(out, defaults)
	maps.Copy(out, t)
	return out
}

// Clone returns a copy of the table, preserving nil.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	return maps.Clone(t)
}

// Keys returns the overridden keys in sorted order.
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Equals reports whether both tables hold the same overrides.
func (t Table) Equals(other Table) bool {
	return maps.Equal(t, other)
}

// Validate rejects empty keys. Empty values are allowed and hide a label.
func (t Table) Validate() error {
	if _, ok := t[""]; ok {
		return ErrEmptyKey
	}
	return nil
}

// String returns a concise summary of the table.
func (t Table) String() string {
	if len(t) == 0 {
		return "Strings{}"
	}
	return fmt.Sprintf("Strings{%d overrides}", len(t))
}
