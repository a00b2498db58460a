package loader

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"google.golang.org/protobuf/types/known/structpb"
)

type tomlLoader struct {
	source []byte
}

// NewTomlLoader returns a Loader for a TOML document.
func NewTomlLoader(source []byte) *tomlLoader {
	return &tomlLoader{source: source}
}

// LoadProto parses the TOML document and checks its version. Integers become numbers;
// TOML dates and times have no key-value form and are rejected.
func (l *tomlLoader) LoadProto() (*structpb.Struct, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	var doc map[string]any
	if err := toml.Unmarshal(l.source, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	if err := checkVersion(doc["version"]); err != nil {
		return nil, err
	}
	return toStruct(doc)
}
