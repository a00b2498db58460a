// Package button describes the visual parts of a clickable control button.
package button

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrInvalidIcon is returned when the icon markup is not a single SVG element.
	ErrInvalidIcon = errors.New("icon must be a single <svg> element")
)

// Options is the visual description of a button. Every field is optional; an empty field
// means the control uses its built-in icon, text or title.
type Options struct {
	// Icon is inline SVG markup.
	Icon string
	// Text is the visible button text.
	Text string
	// Title is the tooltip text shown on hover.
	Title string
}

// IsEmpty reports whether no field is set.
func (o Options) IsEmpty() bool {
	return o.Icon == "" && o.Text == "" && o.Title == ""
}

// WithDefaults fills every empty field from defaults.
func (o Options) WithDefaults(defaults Options) Options {
	if o.Icon == "" {
		o.Icon = defaults.Icon
	}
	if o.Text == "" {
		o.Text = defaults.Text
	}
	if o.Title == "" {
		o.Title = defaults.Title
	}
	return o
}

// Resolve validates a caller's override and fills its empty fields from the control's
// built-in button.
func Resolve(override, builtin Options) (Options, error) {
	if err := override.Validate(); err != nil {
		return Options{}, fmt.Errorf("button: %w", err)
	}
	return override.WithDefaults(builtin), nil
}

// Validate checks the icon markup when one is set.
func (o Options) Validate() error {
	if o.Icon == "" {
		return nil
	}
	return validateIcon(o.Icon)
}

func validateIcon(markup string) error {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIcon, err)
	}

	var roots []*html.Node
	for _, n := range nodes {
		switch n.Type {
		case html.CommentNode:
			continue
		case html.TextNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
		}
		roots = append(roots, n)
	}

	if len(roots) != 1 || roots[0].Type != html.ElementNode || roots[0].Data != "svg" {
		return ErrInvalidIcon
	}
	return nil
}

// String returns a concise representation of the button.
func (o Options) String() string {
	var parts []string
	if o.Icon != "" {
		parts = append(parts, fmt.Sprintf("icon=%d chars", len(o.Icon)))
	}
	if o.Text != "" {
		parts = append(parts, fmt.Sprintf("text=%q", o.Text))
	}
	if o.Title != "" {
		parts = append(parts, fmt.Sprintf("title=%q", o.Title))
	}
	return "Button{" + strings.Join(parts, ", ") + "}"
}
