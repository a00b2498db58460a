package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// yamlLoader implements the Loader interface for YAML files
type yamlLoader struct {
	source []byte
}

// NewYamlLoader creates a new YAML configuration loader
func NewYamlLoader(source []byte) *yamlLoader {
	return &yamlLoader{source: source}
}

// LoadProto parses the first YAML document. Mappings must have string keys.
func (l *yamlLoader) LoadProto() (*structpb.Struct, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	var configMap map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(l.source))
	if err := dec.Decode(&configMap); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	if err := checkVersion(configMap["version"]); err != nil {
		return nil, err
	}
	return toStruct(configMap)
}
