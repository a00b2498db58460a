package styles

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"google.golang.org/protobuf/types/known/structpb"
)

// Key-value field names.
const (
	KeyStyles    = "styles"
	KeyOnChange  = "on_change"
	KeyLabel     = "label"
	KeyStyleName = "style_name"
	KeyStyleURL  = "style_url"
)

// ToProto converts the item to its key-value representation. The URL is written as it was
// configured, with environment references intact.
func (i Item) ToProto() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyLabel:     structpb.NewStringValue(i.Label),
		KeyStyleName: structpb.NewStringValue(i.StyleName),
		KeyStyleURL:  structpb.NewStringValue(i.SourceURL()),
	}}
}

// ToProto converts the options to their key-value representation. An OnChange supplied
// as Go code yields callbacks.ErrNotSerializable.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()

	if o.Styles != nil {
		items := make([]*structpb.Struct, len(o.Styles))
		for i, item := range o.Styles {
			items[i] = item.ToProto()
		}
		w.Structs(KeyStyles, items)
	}

	switch {
	case o.OnChangeScript != nil:
		s, err := o.OnChangeScript.ToProto()
		if err != nil {
			w.Fail(fmt.Errorf("%s: %w", KeyOnChange, err))
		}
		w.Struct(KeyOnChange, s)
	case o.OnChange != nil:
		w.Fail(fmt.Errorf("%s: %w", KeyOnChange, callbacks.ErrNotSerializable))
	}
	return w.Result()
}

// FromProto creates style options from their key-value representation.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{}

	if list := r.Structs(KeyStyles); list != nil {
		o.Styles = make([]Item, 0, len(list))
		for i, s := range list {
			ir := protohelpers.NewReader(s)
			item := Item{
				Label:     ir.String(KeyLabel),
				StyleName: ir.String(KeyStyleName),
				StyleURL:  ir.String(KeyStyleURL),
			}
			if err := ir.Err(); err != nil {
				r.AddError(fmt.Errorf("%s[%d]: %w", KeyStyles, i, err))
				continue
			}
			o.Styles = append(o.Styles, item)
		}
	}

	if s := r.Struct(KeyOnChange); s != nil {
		script, err := callbacks.FromProto(s)
		if err != nil {
			r.AddError(fmt.Errorf("%s: %w", KeyOnChange, err))
		} else {
			o.OnChangeScript = script
			o.OnChange = ScriptChangeFunc(script, nil)
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}
