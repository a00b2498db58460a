package ruler

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/fancy"
)

func (o *Options) labelDescription() string {
	switch {
	case o.LabelFormatScript != nil:
		return o.LabelFormatScript.String()
	case o.LabelFormat != nil:
		return "Go function"
	default:
		return "missing"
	}
}

// String returns a concise representation of the options.
func (o *Options) String() string {
	return fmt.Sprintf("Ruler(units=%s, label=%s, %s)", o.Units, o.labelDescription(), o.Strings)
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("ruler")
	if o.Units == "" {
		tree.AddChild(fmt.Sprintf("Units: %s (default)", o.Units.OrDefault()))
	} else {
		tree.AddChild(fmt.Sprintf("Units: %s", o.Units))
	}
	tree.AddChild(fmt.Sprintf("Label Format: %s", fancy.ScriptText(o.labelDescription())))
	for _, bag := range o.bags() {
		fancy.AddProperties(tree, bag.key, bag.props)
	}
	fancy.AddLabels(tree, o.Strings)
	return tree
}
