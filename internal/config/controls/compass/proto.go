package compass

import (
	"github.com/atlanticdynamic/mapctl/internal/config/base"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"google.golang.org/protobuf/types/known/structpb"
)

// KeyInstant is the key-value field name for Instant.
const KeyInstant = "instant"

// ToProto converts the options to their key-value representation.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	o.Options.WriteProto(w)
	w.OptionalBool(KeyInstant, o.Instant)
	return w.Result()
}

// FromProto creates compass options from their key-value representation.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{
		Options: base.ReadProto(r),
		Instant: r.OptionalBool(KeyInstant),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}
