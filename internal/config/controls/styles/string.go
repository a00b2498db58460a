package styles

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/fancy"
)

// String returns a concise representation of the item.
func (i Item) String() string {
	return fmt.Sprintf("%s (%s)", i.Label, i.StyleName)
}

func (o *Options) changeDescription() string {
	switch {
	case o.OnChangeScript != nil:
		return o.OnChangeScript.String()
	case o.OnChange != nil:
		return "Go function"
	default:
		return "none"
	}
}

// String returns a concise representation of the options.
func (o *Options) String() string {
	return fmt.Sprintf("Styles(%d styles, on_change=%s)", len(o.Styles), o.changeDescription())
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("styles")
	branch := fancy.BranchNode("Styles", fmt.Sprintf("(%d)", len(o.Styles)))
	for _, item := range o.Styles {
		branch.Child(fmt.Sprintf("%s %s", fancy.StyleItemText(item.String()), fancy.PathText(item.StyleURL)))
	}
	tree.AddChild(branch)
	tree.AddChild(fmt.Sprintf("On Change: %s", fancy.ScriptText(o.changeDescription())))
	return tree
}
