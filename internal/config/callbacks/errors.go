package callbacks

import (
	"errors"
	"fmt"
)

var (
	// ErrCallback is the base error for callback script errors.
	ErrCallback = errors.New("callback error")

	ErrMissingCodeAndURI = fmt.Errorf("%w: either code or uri must be set", ErrCallback)
	ErrBothCodeAndURI    = fmt.Errorf("%w: code and uri are mutually exclusive", ErrCallback)
	ErrNegativeTimeout   = fmt.Errorf("%w: negative timeout", ErrCallback)
	ErrInvalidTimeout    = fmt.Errorf("%w: invalid timeout", ErrCallback)
	ErrLoaderCreation    = fmt.Errorf("%w: failed to create script loader", ErrCallback)
	ErrCompilationFailed = fmt.Errorf("%w: compilation failed", ErrCallback)
	ErrEvaluationFailed  = fmt.Errorf("%w: evaluation failed", ErrCallback)
	ErrUnexpectedResult  = fmt.Errorf("%w: unexpected result type", ErrCallback)

	// ErrNotSerializable is returned when a callback was supplied as a Go function and so
	// has no key-value representation.
	ErrNotSerializable = fmt.Errorf("%w: callback has no script source", ErrCallback)
)
