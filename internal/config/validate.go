package config

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"github.com/atlanticdynamic/mapctl/internal/config/version"
)

// Validate checks the version and every configured section. Scripts are compiled and
// environment references in style URLs and script URIs are expanded.
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = version.Version
	}
	if c.Version != version.Version {
		return fmt.Errorf("%w: %s", errz.ErrUnsupportedConfigVer, c.Version)
	}

	var errs []error
	for _, s := range c.sections() {
		if err := s.section.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
