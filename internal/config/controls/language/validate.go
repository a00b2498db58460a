package language

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate checks language codes and layer IDs. It does not require Language to be in
// SupportedLanguages; the consuming control handles that.
func (o *Options) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(o.SupportedLanguages))
	for i, code := range o.SupportedLanguages {
		if _, err := language.Parse(code); err != nil {
			errs = append(errs, newInvalidCodeError(fmt.Sprintf("supported_languages[%d]", i), code, err))
			continue
		}
		if seen[code] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateLanguage, code))
		}
		seen[code] = true
	}

	if o.Language != "" {
		if _, err := language.Parse(o.Language); err != nil {
			errs = append(errs, newInvalidCodeError("language", o.Language, err))
		}
	}

	for i, id := range o.ExcludedLayerIDs {
		if id == "" {
			errs = append(errs, fmt.Errorf("%w at index %d", ErrEmptyLayerID, i))
		}
	}

	if o.GetLanguageKeyScript != nil {
		if err := o.GetLanguageKeyScript.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("get_language_key: %w", err))
		}
	}

	return errors.Join(errs...)
}
