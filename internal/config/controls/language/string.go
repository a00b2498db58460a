package language

import (
	"fmt"
	"strings"

	"github.com/atlanticdynamic/mapctl/internal/fancy"
)

func (o *Options) keyDescription() string {
	switch {
	case o.GetLanguageKeyScript != nil:
		return o.GetLanguageKeyScript.String()
	case o.GetLanguageKey != nil:
		return "Go function"
	default:
		return "identity"
	}
}

// String returns a concise representation of the options.
func (o *Options) String() string {
	lang := o.Language
	if lang == "" {
		lang = "auto"
	}
	return fmt.Sprintf("Language(%s of [%s], key=%s, excluded=%d)",
		lang, strings.Join(o.SupportedLanguages, ","), o.keyDescription(), len(o.ExcludedLayerIDs))
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("language")
	if o.Language == "" {
		tree.AddChild("Language: auto")
	} else {
		tree.AddChild(fmt.Sprintf("Language: %s", o.Language))
	}
	if o.SupportedLanguages == nil {
		tree.AddChild("Supported: any")
	} else {
		tree.AddChild(fmt.Sprintf("Supported: %s", strings.Join(o.SupportedLanguages, ", ")))
	}
	tree.AddChild(fmt.Sprintf("Key: %s", fancy.ScriptText(o.keyDescription())))
	tree.AddChild(fmt.Sprintf("Excluded Layers: %s", fancy.LayerList(o.ExcludedLayerIDs)))
	return tree
}
