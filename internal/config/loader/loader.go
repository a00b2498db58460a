// Package loader reads configuration documents into their key-value form. The document
// is checked for a supported version before anything else is converted.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/mapctl/internal/config/version"
	"google.golang.org/protobuf/types/known/structpb"
)

// Supported document formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

type LoaderFunc func([]byte) Loader

// Loader handles loading configuration from various sources
type Loader interface {
	// LoadProto parses the configuration into its key-value form
	LoadProto() (*structpb.Struct, error)
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return lodFunc(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader
func NewLoaderFromReader(reader io.Reader, lodFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data from reader: %w", err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// NewLoaderFromFilePath creates a new Loader from a file path, picking the format from
// the file extension.
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	lodFunc, err := ForExtension(filepath.Ext(filePath))
	if err != nil {
		return nil, withLocation(err, filePath)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// ForFormat returns the LoaderFunc for a format name: "toml", "yaml" or "yml".
func ForFormat(format string) (LoaderFunc, error) {
	switch strings.ToLower(format) {
	case FormatTOML:
		return func(data []byte) Loader { return NewTomlLoader(data) }, nil
	case FormatYAML, "yml":
		return func(data []byte) Loader { return NewYamlLoader(data) }, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
}

// ForExtension returns the LoaderFunc for a file extension such as ".toml".
func ForExtension(ext string) (LoaderFunc, error) {
	lodFunc, err := ForFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
	return lodFunc, nil
}

// checkVersion defaults an empty version and rejects any other than the current one.
func checkVersion(v any) error {
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: version must be a string, got %T", ErrUnsupportedConfigVer, v)
	}
	if s == "" {
		s = version.Version
	}
	if s != version.Version {
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, s)
	}
	return nil
}

// toStruct converts a parsed document into its key-value form.
func toStruct(configMap map[string]any) (*structpb.Struct, error) {
	if configMap == nil {
		configMap = map[string]any{}
	}
	s, err := structpb.NewStruct(configMap)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config: %w", err)
	}
	return s, nil
}
