package styles

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/interpolation"
)

// ErrEmptyStyleField is returned when a style item has an empty label, name or URL.
var ErrEmptyStyleField = errors.New("empty style field")

// Validate checks every item and the change script. Style URLs are expanded from the
// environment first.
func (o *Options) Validate() error {
	var errs []error

	for i := range o.Styles {
		if err := o.Styles[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("styles[%d]: %w", i, err))
		}
	}

	if o.OnChangeScript != nil {
		if err := o.OnChangeScript.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyOnChange, err))
		}
	}

	return errors.Join(errs...)
}

// Validate interpolates the style URL and checks that no field is empty.
func (i *Item) Validate() error {
	var errs []error

	written := i.StyleURL
	if err := interpolation.InterpolateStruct(i); err != nil {
		errs = append(errs, fmt.Errorf("interpolation failed for style '%s': %w", i.StyleName, err))
	}
	if i.StyleURL != written && i.sourceURL == "" {
		i.sourceURL = written
	}

	if i.Label == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyStyleField, KeyLabel))
	}
	if i.StyleName == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyStyleField, KeyStyleName))
	}
	if i.StyleURL == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyStyleField, KeyStyleURL))
	}

	return errors.Join(errs...)
}
