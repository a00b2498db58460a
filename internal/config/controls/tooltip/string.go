package tooltip

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/fancy"
)

func (o *Options) contentDescription() string {
	switch {
	case o.GetContentScript != nil:
		return o.GetContentScript.String()
	case o.GetContent != nil:
		return "Go function"
	default:
		return "missing"
	}
}

func (o *Options) layerDescription() string {
	if o.Layer == "" {
		return "whole map"
	}
	return o.Layer
}

// String returns a concise representation of the options.
func (o *Options) String() string {
	return fmt.Sprintf("Tooltip(layer=%s, content=%s)", o.layerDescription(), o.contentDescription())
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("tooltip")
	tree.AddChild(fmt.Sprintf("Layer: %s", fancy.LayerText(o.layerDescription())))
	tree.AddChild(fmt.Sprintf("Content: %s", fancy.ScriptText(o.contentDescription())))
	return tree
}
