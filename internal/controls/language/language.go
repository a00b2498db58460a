// Package language models the language switcher: it tracks the active language and
// resolves the label key map layers should read for it.
package language

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/language"
)

// ErrUnsupportedLanguage is returned when selecting a language outside the supported list.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Control is a headless language switcher.
type Control struct {
	logger *slog.Logger
	opts   cfg.Options

	mu     sync.Mutex
	active string
}

// New creates a language switcher from opts. Nil opts accept any language and start with
// none selected.
//
// When the configured language is not supported, the first supported language is used
// instead.
func New(opts *cfg.Options, options ...Option) (*Control, error) {
	if opts == nil {
		opts = &cfg.Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		logger: slog.Default().WithGroup("language"),
		opts: cfg.Options{
			SupportedLanguages:   slices.Clone(opts.SupportedLanguages),
			Language:             opts.Language,
			GetLanguageKey:       opts.GetLanguageKey,
			GetLanguageKeyScript: opts.GetLanguageKeyScript,
			ExcludedLayerIDs:     slices.Clone(opts.ExcludedLayerIDs),
		},
	}
	for _, opt := range options {
		opt(c)
	}
	if c.opts.GetLanguageKey == nil && c.opts.GetLanguageKeyScript != nil {
		c.opts.GetLanguageKey = cfg.ScriptKeyFunc(c.opts.GetLanguageKeyScript, c.logger)
	}

	c.active = c.initialLanguage()
	return c, nil
}

func (c *Control) initialLanguage() string {
	requested := c.opts.Language
	if requested != "" && c.opts.Supports(requested) {
		return requested
	}
	if len(c.opts.SupportedLanguages) == 0 {
		return requested
	}

	fallback := c.opts.SupportedLanguages[0]
	if requested != "" {
		c.logger.Warn("Configured language is not supported, falling back",
			"language", requested, "fallback", fallback)
	}
	return fallback
}

// Active returns the active language code. Empty means none has been chosen.
func (c *Control) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Supported returns the selectable languages, or nil when any language is accepted.
func (c *Control) Supported() []string {
	return slices.Clone(c.opts.SupportedLanguages)
}

// SetLanguage makes code the active language.
func (c *Control) SetLanguage(code string) error {
	if !c.opts.Supports(code) {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
	}
	c.mu.Lock()
	c.active = code
	c.mu.Unlock()
	c.logger.Debug("Language changed", "language", code)
	return nil
}

// LanguageKey returns the label key for the active language.
func (c *Control) LanguageKey() string {
	return c.opts.Key(c.Active())
}

// IsExcluded reports whether layerID keeps its labels untranslated.
func (c *Control) IsExcluded(layerID string) bool {
	return c.opts.IsExcluded(layerID)
}

// LayerKeys maps each layer that should be translated to the active label key.
func (c *Control) LayerKeys(layerIDs []string) map[string]string {
	key := c.LanguageKey()
	out := make(map[string]string, len(layerIDs))
	for _, id := range layerIDs {
		if !c.IsExcluded(id) {
			out[id] = key
		}
	}
	return out
}
