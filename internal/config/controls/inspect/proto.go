package inspect

import (
	"fmt"

	"github.com/atlanticdynamic/mapctl/internal/config/base"
	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"github.com/atlanticdynamic/mapctl/internal/fancy"
	"google.golang.org/protobuf/types/known/structpb"
)

// KeyConsole is the key-value field name for Console.
const KeyConsole = "console"

// ToProto converts the options to their key-value representation.
func (o *Options) ToProto() (*structpb.Struct, error) {
	if o == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	o.Options.WriteProto(w)
	w.OptionalBool(KeyConsole, o.Console)
	return w.Result()
}

// FromProto creates inspector options from their key-value representation.
func FromProto(pb *structpb.Struct) (*Options, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	o := &Options{
		Options: base.ReadProto(r),
		Console: r.OptionalBool(KeyConsole),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

// String returns a concise representation of the options.
func (o *Options) String() string {
	return fmt.Sprintf("Inspect(console=%t, %s)", o.LogsToConsole(), o.Strings)
}

// ToTree returns a tree visualization of the options.
func (o *Options) ToTree() *fancy.ComponentTree {
	tree := fancy.ControlTree("inspect")
	tree.AddChild(fmt.Sprintf("Console: %t", o.LogsToConsole()))
	fancy.AddLabels(tree, o.Strings)
	return tree
}
