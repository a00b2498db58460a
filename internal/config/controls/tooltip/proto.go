package tooltip

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"google.golang.org/protobuf/types/known/structpb"
)

// Key-value field names.
const (
	KeyGetContent = "get_content"
	KeyLayer      = "layer"
)

// ToProto converts the options to their key-value representation. A GetContent supplied
// as Go code yields callbacks.ErrNotSerializable.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	w.String(KeyLayer, o.Layer)

	switch {
	case o.GetContentScript != nil:
		s, err := o.GetContentScript.ToProto()
		if err != nil {
			w.Fail(fmt.Errorf("%s: %w", KeyGetContent, err))
		}
		w.Struct(KeyGetContent, s)
	case o.GetContent != nil:
		w.Fail(fmt.Errorf("%s: %w", KeyGetContent, callbacks.ErrNotSerializable))
	}
	return w.Result()
}

// FromProto creates tooltip options from their key-value representation.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{Layer: r.String(KeyLayer)}

	if s := r.Struct(KeyGetContent); s != nil {
		script, err := callbacks.FromProto(s)
		if err != nil {
			r.AddError(fmt.Errorf("%s: %w", KeyGetContent, err))
		} else {
			o.GetContentScript = script
			o.GetContent = ScriptContentFunc(script, nil)
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}
