package protohelpers

import (
	"fmt"

	"github.com/robbyt/protobaggins"
	"google.golang.org/protobuf/types/known/structpb"
)

// Writer builds a key-value struct. Empty values are omitted so that absent options stay
// absent after a round-trip.
type Writer struct {
	fields map[string]*structpb.Value
	err    error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{fields: make(map[string]*structpb.Value)}
}

// String sets key when s is not empty.
func (w *Writer) String(key, s string) {
	if s == "" {
		return
	}
	w.fields[key] = structpb.NewStringValue(s)
}

// OptionalBool sets key when b is not nil.
func (w *Writer) OptionalBool(key string, b *bool) {
	if b == nil {
		return
	}
	w.fields[key] = structpb.NewBoolValue(*b)
}

// StringSlice sets key when the slice is not nil. An empty non-nil slice is kept.
func (w *Writer) StringSlice(key string, values []string) {
	if values == nil {
		return
	}
	items := make([]*structpb.Value, len(values))
	for i, v := range values {
		items[i] = protobaggins.TryNewStructValue(v)
	}
	w.fields[key] = structpb.NewListValue(&structpb.ListValue{Values: items})
}

// StringMap sets key when the table is not nil.
func (w *Writer) StringMap(key string, m map[string]string) {
	if m == nil {
		return
	}
	fields := make(map[string]*structpb.Value, len(m))
	for k, v := range m {
		fields[k] = structpb.NewStringValue(v)
	}
	w.fields[key] = structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

// Map sets key to a nested table of plain Go values when m is not nil.
func (w *Writer) Map(key string, m map[string]any) {
	if m == nil || w.err != nil {
		return
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		w.err = fmt.Errorf("field '%s': %w", key, err)
		return
	}
	w.fields[key] = structpb.NewStructValue(s)
}

// Struct sets key to a nested struct when s is not nil.
func (w *Writer) Struct(key string, s *structpb.Struct) {
	if s == nil {
		return
	}
	w.fields[key] = structpb.NewStructValue(s)
}

// Structs sets key to a list of nested structs when the slice is not nil.
func (w *Writer) Structs(key string, list []*structpb.Struct) {
	if list == nil {
		return
	}
	items := make([]*structpb.Value, len(list))
	for i, s := range list {
		items[i] = structpb.NewStructValue(s)
	}
	w.fields[key] = structpb.NewListValue(&structpb.ListValue{Values: items})
}

// Fail records an error from the caller; the first one wins.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Result returns the struct built so far, or the first error recorded.
func (w *Writer) Result() (*structpb.Struct, error) {
	if w.err != nil {
		return nil, w.err
	}
	return &structpb.Struct{Fields: w.fields}, nil
}
