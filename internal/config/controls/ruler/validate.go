package ruler

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"github.com/atlanticdynamic/mapctl/internal/config/paint"
)

// Validate checks the ruler options. Nil property bags count as missing; empty ones are
// accepted.
func (o *Options) Validate() error {
	var errs []error

	if err := o.Options.Validate(); err != nil {
		errs = append(errs, err)
	}

	if !o.Units.IsValid() {
		errs = append(errs, fmt.Errorf("%w: units '%s'", errz.ErrInvalidValue, string(o.Units)))
	}

	if o.LabelFormat == nil && o.LabelFormatScript == nil {
		errs = append(errs, fmt.Errorf("%w: %s", errz.ErrMissingRequiredField, KeyLabelFormat))
	}
	if o.LabelFormatScript != nil {
		if err := o.LabelFormatScript.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyLabelFormat, err))
		}
	}

	for _, bag := range o.bags() {
		if bag.props == nil {
			errs = append(errs, fmt.Errorf("%w: %s", errz.ErrMissingRequiredField, bag.key))
			continue
		}
		validate := bag.props.Validate
		if bag.key == KeyMarkerCSS {
			validate = bag.props.ValidateCSS
		}
		if err := validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", bag.key, err))
		}
	}

	return errors.Join(errs...)
}

type namedBag struct {
	key   string
	props paint.Properties
}

func (o *Options) bags() []namedBag {
	return []namedBag{
		{KeyMarkerLayout, o.MarkerLayout},
		{KeyMarkerPaint, o.MarkerPaint},
		{KeyMarkerCSS, o.MarkerCSS},
		{KeyLineLayout, o.LineLayout},
		{KeyLinePaint, o.LinePaint},
	}
}
