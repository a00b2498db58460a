package ruler

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/base"
	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	"github.com/atlanticdynamic/mapctl/internal/config/paint"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"github.com/atlanticdynamic/mapctl/internal/config/units"
	"google.golang.org/protobuf/types/known/structpb"
)

// Key-value field names.
const (
	KeyUnits        = "units"
	KeyLabelFormat  = "label_format"
	KeyMarkerLayout = "marker_layout"
	KeyMarkerPaint  = "marker_paint"
	KeyMarkerCSS    = "marker_css"
	KeyLineLayout   = "line_layout"
	KeyLinePaint    = "line_paint"
)

// ToProto converts the options to their key-value representation. A label format
// supplied as Go code yields callbacks.ErrNotSerializable.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	o.Options.WriteProto(w)
	w.String(KeyUnits, string(o.Units))

	switch {
	case o.LabelFormatScript != nil:
		s, err := o.LabelFormatScript.ToProto()
		if err != nil {
			w.Fail(fmt.Errorf("%s: %w", KeyLabelFormat, err))
		}
		w.Struct(KeyLabelFormat, s)
	case o.LabelFormat != nil:
		w.Fail(fmt.Errorf("%s: %w", KeyLabelFormat, callbacks.ErrNotSerializable))
	}

	for _, bag := range o.bags() {
		w.Map(bag.key, bag.props.Map())
	}
	return w.Result()
}

// FromProto creates ruler options from their key-value representation. Units are parsed
// leniently, so "Kilometers" and "nautical_miles" are accepted.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{
		Options:      base.ReadProto(r),
		MarkerLayout: paint.Properties(r.Map(KeyMarkerLayout)),
		MarkerPaint:  paint.Properties(r.Map(KeyMarkerPaint)),
		MarkerCSS:    paint.Properties(r.Map(KeyMarkerCSS)),
		LineLayout:   paint.Properties(r.Map(KeyLineLayout)),
		LinePaint:    paint.Properties(r.Map(KeyLinePaint)),
	}

	if raw := r.String(KeyUnits); raw != "" {
		u, err := units.FromString(raw)
		if err != nil {
			r.AddError(fmt.Errorf("%s: %w", KeyUnits, err))
		}
		o.Units = u
	}

	if s := r.Struct(KeyLabelFormat); s != nil {
		script, err := callbacks.FromProto(s)
		if err != nil {
			r.AddError(fmt.Errorf("%s: %w", KeyLabelFormat, err))
		} else {
			o.LabelFormatScript = script
			o.LabelFormat = ScriptLabelFormat(script, nil)
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}
