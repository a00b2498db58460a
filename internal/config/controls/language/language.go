// Package language holds the options for the language-switching control.
package language

import (
	"context"
	"log/slog"
	"slices"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
)

// KeyFunc maps a language code to the key used to look up translated labels, for example
// "de" to "name_de". It is called synchronously whenever a language is applied and must
// be free of side effects.
type KeyFunc func(language string) string

// Options configures a language control. It does not embed base.Options.
type Options struct {
	// SupportedLanguages lists the selectable language codes in display order. Nil means
	// any language is accepted.
	SupportedLanguages []string

	// Language is the initially active code. Empty leaves the choice to the control.
	// It should be one of SupportedLanguages; the control falls back when it is not.
	Language string

	// GetLanguageKey customizes the label lookup key. Nil means identity.
	GetLanguageKey KeyFunc

	// GetLanguageKeyScript is the source of GetLanguageKey when it was loaded from a
	// configuration file. It is nil for keys supplied as Go functions.
	GetLanguageKeyScript *callbacks.Script

	// ExcludedLayerIDs lists layers never subject to label translation.
	ExcludedLayerIDs []string
}

// Key applies GetLanguageKey, or the identity mapping when none is set.
func (o *Options) Key(language string) string {
	if o.GetLanguageKey == nil {
		return language
	}
	return o.GetLanguageKey(language)
}

// Supports reports whether code is selectable. Every code is selectable when
// SupportedLanguages is nil.
func (o *Options) Supports(code string) bool {
	if o.SupportedLanguages == nil {
		return true
	}
	return slices.Contains(o.SupportedLanguages, code)
}

// IsExcluded reports whether a layer is exempt from translation.
func (o *Options) IsExcluded(layerID string) bool {
	return slices.Contains(o.ExcludedLayerIDs, layerID)
}

// Equals compares two language options. Scripts are compared by source; a Go-supplied key
// function without a script is compared by presence only.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return slices.Equal(o.SupportedLanguages, other.SupportedLanguages) &&
		o.Language == other.Language &&
		callbacks.SameCallback(o.GetLanguageKeyScript, o.GetLanguageKey != nil, other.GetLanguageKeyScript, other.GetLanguageKey != nil) &&
		slices.Equal(o.ExcludedLayerIDs, other.ExcludedLayerIDs)
}

// ScriptKeyFunc adapts a script into a KeyFunc. The script receives the code as
// ctx["language"] and must return a string. When it fails, the failure is logged and the
// code itself is used.
func ScriptKeyFunc(script *callbacks.Script, logger *slog.Logger) KeyFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("language").With("callback", "get_language_key")
	return func(language string) string {
		key, err := script.CallString(context.Background(), map[string]any{"language": language})
		if err != nil {
			logger.Warn("Language key script failed, using the code as key",
				"language", language, "error", err)
			return language
		}
		return key
	}
}
