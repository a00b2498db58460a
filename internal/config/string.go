package config

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Map Controls Config (%s)", cfg.GetVersion())))

	sections := cfg.sections()
	controlsTree := fancy.BranchNode("Controls", fmt.Sprintf("(%d of %d)", len(sections), len(Sections)))
	for _, s := range sections {
		controlsTree.Child(s.section.ToTree().Tree())
	}
	t.Child(controlsTree)

	return t.String()
}
