// Package styles models the style switcher: a list of map styles with one active, and a
// change notification whenever the active style changes.
package styles

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/styles"
)

var (
	// ErrNoStyles is returned when selecting from an empty switcher.
	ErrNoStyles = errors.New("no styles to select")

	// ErrIndexOutOfRange is returned for a selection outside the style list.
	ErrIndexOutOfRange = errors.New("style index out of range")

	// ErrUnknownStyle is returned when selecting a style name that is not listed.
	ErrUnknownStyle = errors.New("unknown style")
)

// Item is a selectable style.
type Item = cfg.Item

// Control is a headless style switcher.
type Control struct {
	logger   *slog.Logger
	items    []Item
	onChange cfg.ChangeFunc
	initial  string

	mu     sync.Mutex
	active int
}

// New creates a style switcher. Nothing is active until a style is selected or
// WithInitialStyle names one.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger:   slog.Default().WithGroup("styles"),
		items:    slices.Clone(opts.Styles),
		onChange: opts.OnChange,
		active:   -1,
	}
	for _, opt := range options {
		opt(c)
	}

	if c.onChange == nil && opts.OnChangeScript != nil {
		c.onChange = cfg.ScriptChangeFunc(opts.OnChangeScript, c.logger)
	}

	if c.initial != "" {
		idx := slices.IndexFunc(c.items, func(item Item) bool { return item.StyleName == c.initial })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, c.initial)
		}
		c.active = idx
	}
	return c, nil
}

// Items returns a copy of the styles in display order.
func (c *Control) Items() []Item {
	return slices.Clone(c.items)
}

// IsEmpty reports whether there is nothing to select.
func (c *Control) IsEmpty() bool {
	return len(c.items) == 0
}

// Active returns the active style, if any.
func (c *Control) Active() (Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active < 0 {
		return Item{}, false
	}
	return c.items[c.active], true
}

// ActiveIndex returns the position of the active style, or -1.
func (c *Control) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Select makes the style at index active. OnChange is called once, after the change,
// and only when the active style actually changed.
func (c *Control) Select(index int) error {
	if c.IsEmpty() {
		return ErrNoStyles
	}
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.items))
	}

	c.mu.Lock()
	changed := c.active != index
	c.active = index
	item := c.items[index]
	c.mu.Unlock()

	if !changed {
		return nil
	}
	c.logger.Debug("Style changed", "style", item.StyleName)
	if c.onChange != nil {
		c.onChange(item)
	}
	return nil
}

// SelectByName selects the first style named styleName.
func (c *Control) SelectByName(styleName string) error {
	idx := slices.IndexFunc(c.items, func(item Item) bool { return item.StyleName == styleName })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownStyle, styleName)
	}
	return c.Select(idx)
}
