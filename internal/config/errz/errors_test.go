package errz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrFailedToLoadConfig,
		ErrFailedToConvertConfig,
		ErrFailedToValidateConfig,
		ErrUnsupportedConfigVer,
		ErrInvalidValue,
		ErrInvalidType,
		ErrMissingRequiredField,
		ErrUnknownField,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b, "%q must not match %q", a, b)
		}
	}
}

func TestWrappedFieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "missing tooltip callback",
			err:      fmt.Errorf("%w: get_content", ErrMissingRequiredField),
			sentinel: ErrMissingRequiredField,
			message:  "missing required field: get_content",
		},
		{
			name:     "wrong type for compass instant",
			err:      fmt.Errorf("%w: field 'instant' must be a bool, got string", ErrInvalidType),
			sentinel: ErrInvalidType,
			message:  "invalid type: field 'instant' must be a bool, got string",
		},
		{
			name:     "unknown key in zoom section",
			err:      fmt.Errorf("%w: 'zoomin'", ErrUnknownField),
			sentinel: ErrUnknownField,
			message:  "unknown field: 'zoomin'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestDocumentErrorChain(t *testing.T) {
	t.Parallel()

	field := fmt.Errorf("ruler: %w: units 'parsecs'", ErrInvalidValue)
	doc := fmt.Errorf("%w: %w", ErrFailedToValidateConfig, errors.Join(field))

	assert.ErrorIs(t, doc, ErrFailedToValidateConfig)
	assert.ErrorIs(t, doc, ErrInvalidValue)
	assert.NotErrorIs(t, doc, ErrFailedToLoadConfig)
	assert.Contains(t, doc.Error(), "units 'parsecs'")
}
