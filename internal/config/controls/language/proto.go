package language

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"google.golang.org/protobuf/types/known/structpb"
)

// Key-value field names.
const (
	KeySupportedLanguages = "supported_languages"
	KeyLanguage           = "language"
	KeyGetLanguageKey     = "get_language_key"
	KeyExcludedLayerIDs   = "excluded_layer_ids"
)

// ToProto converts the options to their key-value representation. A key function
// supplied as Go code cannot be represented and yields callbacks.ErrNotSerializable.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	w.StringSlice(KeySupportedLanguages, o.SupportedLanguages)
	w.String(KeyLanguage, o.Language)
	w.StringSlice(KeyExcludedLayerIDs, o.ExcludedLayerIDs)

	switch {
	case o.GetLanguageKeyScript != nil:
		s, err := o.GetLanguageKeyScript.ToProto()
		if err != nil {
			w.Fail(fmt.Errorf("%s: %w", KeyGetLanguageKey, err))
		}
		w.Struct(KeyGetLanguageKey, s)
	case o.GetLanguageKey != nil:
		w.Fail(fmt.Errorf("%s: %w", KeyGetLanguageKey, callbacks.ErrNotSerializable))
	}
	return w.Result()
}

// FromProto creates language options from their key-value representation. A key script
// is wrapped into GetLanguageKey but not compiled; Validate compiles it.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{
		SupportedLanguages: r.StringSlice(KeySupportedLanguages),
		Language:           r.String(KeyLanguage),
		ExcludedLayerIDs:   r.StringSlice(KeyExcludedLayerIDs),
	}

	if s := r.Struct(KeyGetLanguageKey); s != nil {
		script, err := callbacks.FromProto(s)
		if err != nil {
			r.AddError(fmt.Errorf("%s: %w", KeyGetLanguageKey, err))
		} else {
			o.GetLanguageKeyScript = script
			o.GetLanguageKey = ScriptKeyFunc(script, nil)
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}
