// Package config provides the document that configures every map control at once. Each
// section is optional; a nil section means the control is not configured.
package config

import (
	"github.com/atlanticdynamic/mapctl/internal/config/controls/compass"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/inspect"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/language"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/ruler"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/styles"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/tooltip"
	"github.com/atlanticdynamic/mapctl/internal/config/controls/zoom"
	"github.com/atlanticdynamic/mapctl/internal/config/version"
)

// Control section names, in document order.
const (
	SectionCompass  = "compass"
	SectionInspect  = "inspect"
	SectionLanguage = "language"
	SectionRuler    = "ruler"
	SectionStyles   = "styles"
	SectionTooltip  = "tooltip"
	SectionZoom     = "zoom"
)

// Sections lists every control section name in document order.
var Sections = []string{
	SectionCompass, SectionInspect, SectionLanguage, SectionRuler,
	SectionStyles, SectionTooltip, SectionZoom,
}

// Config represents the complete control configuration document
type Config struct {
	Version  string
	Compass  *compass.Options
	Inspect  *inspect.Options
	Language *language.Options
	Ruler    *ruler.Options
	Styles   *styles.Options
	Tooltip  *tooltip.Options
	Zoom     *zoom.Options
}

// GetVersion returns the document version, with the default for an empty one.
func (c *Config) GetVersion() string {
	if c.Version == "" {
		return version.Version
	}
	return c.Version
}

// Controls returns the names of the configured sections in document order.
func (c *Config) Controls() []string {
	sections := c.sections()
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.name
	}
	return out
}

// Equals compares two documents section by section. An empty version equals the default.
func (c *Config) Equals(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.GetVersion() == other.GetVersion() &&
		c.Compass.Equals(other.Compass) &&
		c.Inspect.Equals(other.Inspect) &&
		c.Language.Equals(other.Language) &&
		c.Ruler.Equals(other.Ruler) &&
		c.Styles.Equals(other.Styles) &&
		c.Tooltip.Equals(other.Tooltip) &&
		c.Zoom.Equals(other.Zoom)
}
