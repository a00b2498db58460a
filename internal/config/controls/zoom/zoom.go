// Package zoom holds the options for the zoom in/out control.
package zoom

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/base"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"github.com/atlanticdynamic/mapctl/internal/fancy"
	"google.golang.org/protobuf/types/known/structpb"
)

// Label keys the zoom control reads from Strings.
const (
	LabelZoomIn  = "zoomIn"
	LabelZoomOut = "zoomOut"
)

// DefaultLabels are the built-in zoom labels.
var DefaultLabels = map[string]string{
	LabelZoomIn:  "Zoom in",
	LabelZoomOut: "Zoom out",
}

// Options configures a zoom control. Only labels can be changed.
type Options struct {
	base.Options
}

// Validate checks the label overrides.
func (o *Options) Validate() error {
	return o.Options.Validate()
}

// Equals compares two zoom options.
func (o *Options) Equals(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Options.Equals(other.Options)
}

// ToProto converts the options to their key-value representation.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	o.Options.WriteProto(w)
	return w.Result()
}

// FromProto creates zoom options from their key-value representation.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{Options: base.ReadProto(r)}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) String() string {
	return fmt.Sprintf("Zoom(%s)", o.Strings)
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("zoom")
	tree.AddChild(fmt.Sprintf("Zoom In: %q", o.Label(LabelZoomIn, DefaultLabels[LabelZoomIn])))
	tree.AddChild(fmt.Sprintf("Zoom Out: %q", o.Label(LabelZoomOut, DefaultLabels[LabelZoomOut])))
	fancy.AddLabels(tree, o.Strings)
	return tree
}
