package compass

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/fancy"
)

// String returns a concise representation of the options.
func (o *Options) String() string {
	return fmt.Sprintf("Compass(instant=%t, %s)", o.IsInstant(), o.Strings)
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("compass")
	if o.Instant == nil {
		tree.AddChild("Instant: absent (animate)")
	} else {
		tree.AddChild(fmt.Sprintf("Instant: %t", *o.Instant))
	}
	fancy.AddLabels(tree, o.Strings)
	return tree
}
