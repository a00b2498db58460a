package tooltip

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/errz"
)

// Validate checks that content can be produced.
func (o *Options) Validate() error {
	var errs []error

	if o.GetContent == nil && o.GetContentScript == nil {
		errs = append(errs, fmt.Errorf("%w: %s", errz.ErrMissingRequiredField, KeyGetContent))
	}
	if o.GetContentScript != nil {
		if err := o.GetContentScript.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyGetContent, err))
		}
	}

	return errors.Join(errs...)
}
