package config

import (
	"github.com/atlanticdynamic/mapctl/internal/fancy"
	"google.golang.org/protobuf/types/known/structpb"
)

// Section is implemented by every control's options.
type Section interface {
	Validate() error
	ToProto() (*structpb.Struct, error)
	ToTree() *fancy.ComponentTree
	String() string
}

type namedSection struct {
	name    string
	section Section
}

// sections returns the configured sections in document order.
func (c *Config) sections() []namedSection {
	var out []namedSection
	add := func(name string, configured bool, s Section) {
		if configured {
			out = append(out, namedSection{name: name, section: s})
		}
	}
	add(SectionCompass, c.Compass != nil, c.Compass)
	add(SectionInspect, c.Inspect != nil, c.Inspect)
	add(SectionLanguage, c.Language != nil, c.Language)
	add(SectionRuler, c.Ruler != nil, c.Ruler)
	add(SectionStyles, c.Styles != nil, c.Styles)
	add(SectionTooltip, c.Tooltip != nil, c.Tooltip)
	add(SectionZoom, c.Zoom != nil, c.Zoom)
	return out
}

// Section returns the configured section with the given name.
func (c *Config) Section(name string) (Section, bool) {
	for _, s := range c.sections() {
		if s.name == name {
			return s.section, true
		}
	}
	return nil, false
}
