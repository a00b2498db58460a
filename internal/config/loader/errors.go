package loader

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/errz"
)

var (
	ErrNoSourceProvided     = errors.New("no source provided to loader")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrUnsupportedFormat    = errors.New("unsupported config format")
	ErrParseConfig          = errors.New("failed to parse config")
	ErrInvalidS3URI         = errors.New("invalid S3 URI")
	ErrFetchS3Object        = errors.New("failed to fetch S3 object")
	ErrUnsupportedConfigVer = errz.ErrUnsupportedConfigVer
)

// withLocation appends the file path or S3 URI a failure came from.
func withLocation(err error, location string) error {
	return fmt.Errorf("%w: %s", err, location)
}
