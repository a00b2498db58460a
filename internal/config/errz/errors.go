// Package errz holds the sentinel errors shared by the config package and the control
// option packages. Callers wrap them with context and match them with errors.Is.
package errz

import "errors"

// Document-level failures, returned by the config constructors.
var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToConvertConfig  = errors.New("failed to convert config from key-value form")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
)

// Field-level failures, found while decoding or validating one option shape.
var (
	ErrInvalidValue         = errors.New("invalid value")
	ErrInvalidType          = errors.New("invalid type")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnknownField         = errors.New("unknown field")
)
