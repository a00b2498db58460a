package language

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLanguageCode is returned for a code that is not a BCP 47 tag.
	ErrInvalidLanguageCode = errors.New("invalid language code")

	// ErrDuplicateLanguage is returned when a code appears twice in SupportedLanguages.
	ErrDuplicateLanguage = errors.New("duplicate supported language")

	// ErrEmptyLayerID is returned for an empty excluded layer ID.
	ErrEmptyLayerID = errors.New("empty excluded layer ID")
)

func newInvalidCodeError(field, code string, err error) error {
	return fmt.Errorf("%w: %s '%s': %w", ErrInvalidLanguageCode, field, code, err)
}
