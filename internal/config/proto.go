package config

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/controls/compass"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/inspect"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/language"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/ruler"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/styles"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/tooltip"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/zoom"
	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"google.golang.org/protobuf/types/known/structpb"
)

// KeyVersion is the key-value field holding the document version.
const KeyVersion = "version"

// ToProto converts the document to its key-value representation. Sections holding
// Go-only callbacks cannot be converted.
func (c *Config) ToProto() (*structpb.Struct, error) {
	w := protohelpers.NewWriter()
	w.String(KeyVersion, c.GetVersion())
	for _, s := range c.sections() {
		pb, err := s.section.ToProto()
		if err != nil {
			w.Fail(fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		w.Struct(s.name, pb)
	}
	return w.Result()
}

// sectionFromProto decodes one section, recording a prefixed error on failure.
func sectionFromProto[T any](r *protohelpers.Reader, name string, decode func(*structpb.Struct) (*T, error)) *T {
	pb := r.Struct(name)
	if pb == nil {
		return nil
	}
	opts, err := decode(pb)
	if err != nil {
		r.AddError(fmt.Errorf("%s: %w", name, err))
		return nil
	}
	return opts
}

// NewFromProto converts the key-value representation to a document. It does not
// validate; call Validate on the result.
func NewFromProto(pb *structpb.Struct) (*Config, error) {
	if pb == nil {
		return nil, fmt.Errorf("%w: nil document", errz.ErrFailedToConvertConfig)
	}
	r := protohelpers.NewReader(pb)
	c := &Config{
		Version:  r.String(KeyVersion),
		Compass:  sectionFromProto(r, SectionCompass, compass.FromProto),
		Inspect:  sectionFromProto(r, SectionInspect, inspect.FromProto),
		Language: sectionFromProto(r, SectionLanguage, language.FromProto),
		Ruler:    sectionFromProto(r, SectionRuler, ruler.FromProto),
		Styles:   sectionFromProto(r, SectionStyles, styles.FromProto),
		Tooltip:  sectionFromProto(r, SectionTooltip, tooltip.FromProto),
		Zoom:     sectionFromProto(r, SectionZoom, zoom.FromProto),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToConvertConfig, err)
	}
	return c, nil
}
