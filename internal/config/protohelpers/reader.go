// Package protohelpers reads and writes the plain key-value form of configuration
// documents, backed by structpb.
package protohelpers

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"google.golang.org/protobuf/types/known/structpb"
)

// Reader pulls typed fields out of a key-value struct. Type mismatches are collected
// rather than returned, so a caller can read every field and then check Err once.
type Reader struct {
	fields map[string]*structpb.Value
	seen   map[string]bool
	errs   []error
}

// NewReader wraps a struct for typed access. A nil struct reads as empty.
func NewReader(s *structpb.Struct) *Reader {
	return &Reader{
		fields: s.GetFields(),
		seen:   make(map[string]bool),
	}
}

// Has reports whether key is present and not null.
func (r *Reader) Has(key string) bool {
	v, ok := r.fields[key]
	if !ok {
		return false
	}
	_, isNull := v.GetKind().(*structpb.Value_NullValue)
	return !isNull
}

func (r *Reader) lookup(key string) (*structpb.Value, bool) {
	r.seen[key] = true
	if !r.Has(key) {
		return nil, false
	}
	return r.fields[key], true
}

func (r *Reader) typeErr(key, want string, v *structpb.Value) {
	r.errs = append(r.errs, fmt.Errorf(
		"%w: field '%s' must be a %s, got %s",
		errz.ErrInvalidType, key, want, kindName(v),
	))
}

// String returns the string at key, or "" when absent.
func (r *Reader) String(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		r.typeErr(key, "string", v)
		return ""
	}
	return s.StringValue
}

// OptionalBool returns the bool at key, or nil when absent.
func (r *Reader) OptionalBool(key string) *bool {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		r.typeErr(key, "bool", v)
		return nil
	}
	out := b.BoolValue
	return &out
}

// Number returns the number at key and whether it was present.
func (r *Reader) Number(key string) (float64, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return 0, false
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber {
		r.typeErr(key, "number", v)
		return 0, false
	}
	return n.NumberValue, true
}

// StringSlice returns the list of strings at key, or nil when absent.
func (r *Reader) StringSlice(key string) []string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	list, isList := v.GetKind().(*structpb.Value_ListValue)
	if !isList {
		r.typeErr(key, "list of strings", v)
		return nil
	}
	out := make([]string, 0, len(list.ListValue.GetValues()))
	for i, item := range list.ListValue.GetValues() {
		s, isString := item.GetKind().(*structpb.Value_StringValue)
		if !isString {
			r.typeErr(fmt.Sprintf("%s[%d]", key, i), "string", item)
			continue
		}
		out = append(out, s.StringValue)
	}
	return out
}

// StringMap returns a string-to-string table at key, or nil when absent.
func (r *Reader) StringMap(key string) map[string]string {
	s := r.Struct(key)
	if s == nil {
		return nil
	}
	out := make(map[string]string, len(s.GetFields()))
	for k, item := range s.GetFields() {
		str, isString := item.GetKind().(*structpb.Value_StringValue)
		if !isString {
			r.typeErr(fmt.Sprintf("%s.%s", key, k), "string", item)
			continue
		}
		out[k] = str.StringValue
	}
	return out
}

// Map returns the nested table at key converted to plain Go values, or nil when absent.
func (r *Reader) Map(key string) map[string]any {
	s := r.Struct(key)
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s.GetFields()))
	for k, item := range s.GetFields() {
		out[k] = item.AsInterface()
	}
	return out
}

// Struct returns the nested struct at key, or nil when absent.
func (r *Reader) Struct(key string) *structpb.Struct {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s, isStruct := v.GetKind().(*structpb.Value_StructValue)
	if !isStruct {
		r.typeErr(key, "table", v)
		return nil
	}
	return s.StructValue
}

// Structs returns the list of nested structs at key, or nil when absent.
func (r *Reader) Structs(key string) []*structpb.Struct {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	list, isList := v.GetKind().(*structpb.Value_ListValue)
	if !isList {
		r.typeErr(key, "list of tables", v)
		return nil
	}
	out := make([]*structpb.Struct, 0, len(list.ListValue.GetValues()))
	for i, item := range list.ListValue.GetValues() {
		s, isStruct := item.GetKind().(*structpb.Value_StructValue)
		if !isStruct {
			r.typeErr(fmt.Sprintf("%s[%d]", key, i), "table", item)
			continue
		}
		out = append(out, s.StructValue)
	}
	return out
}

// AddError records an error found by the caller while decoding a field.
func (r *Reader) AddError(err error) {
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

// Err returns every type error seen so far plus one error per key that was never read.
func (r *Reader) Err() error {
	errs := slices.Clone(r.errs)
	unknown := make([]string, 0)
	for k := range r.fields {
		if !r.seen[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		errs = append(errs, fmt.Errorf("%w: '%s'", errz.ErrUnknownField, k))
	}
	return errors.Join(errs...)
}

func kindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_StringValue:
		return "string"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_ListValue:
		return "list"
	case *structpb.Value_StructValue:
		return "table"
	default:
		return "unknown"
	}
}
