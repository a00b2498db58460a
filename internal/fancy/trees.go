package fancy

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			CountText(count),
		),
	)
}

// ComponentTree wraps a styled tree for one configuration component
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a new component tree with appropriate styling
func NewComponentTree(title string) *ComponentTree {
	t := Tree()
	t.Root(title)
	return &ComponentTree{tree: t}
}

// ControlTree creates a component tree titled with a styled control name
func ControlTree(name string) *ComponentTree {
	return NewComponentTree(ControlText(name))
}

// Tree returns the underlying tree
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddChild adds a child node to the root branch
func (c *ComponentTree) AddChild(child any) *tree.Tree {
	return c.tree.Child(child)
}

// String renders the tree
func (c *ComponentTree) String() string {
	return c.tree.String()
}

// AddLabels adds a "Strings" branch listing label overrides, if there are any
func AddLabels(c *ComponentTree, table map[string]string) {
	if len(table) == 0 {
		return
	}
	branch := BranchNode("Strings", fmt.Sprintf("(%d)", len(table)))
	for _, k := range slices.Sorted(maps.Keys(table)) {
		branch.Child(fmt.Sprintf("%s: %q", k, table[k]))
	}
	c.AddChild(branch)
}

// AddProperties adds a titled branch listing style properties in key order
func AddProperties(c *ComponentTree, title string, props map[string]any) {
	branch := BranchNode(title, fmt.Sprintf("(%d)", len(props)))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		branch.Child(fmt.Sprintf("%s: %v", k, props[k]))
	}
	c.AddChild(branch)
}
