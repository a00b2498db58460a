package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagName marks string fields for expansion: `env_interpolation:"yes"`.
const TagName = "env_interpolation"

// InterpolateStruct expands tagged string fields of a struct in place. Tagged
// map[string]string values and []string elements are expanded too. Nested structs,
// struct pointers and slices of either are walked whether tagged or not.
func InterpolateStruct(v any) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct or pointer to struct, got %T", v)
	}
	return interpolateValue(val)
}

func interpolateValue(val reflect.Value) error {
	typ := val.Type()
	var errs []error

	for i := range val.NumField() {
		field := val.Field(i)
		meta := typ.Field(i)
		if !field.CanSet() {
			continue
		}
		tagged := strings.EqualFold(meta.Tag.Get(TagName), "yes")

		if err := interpolateField(field, tagged); err != nil {
			errs = append(errs, fmt.Errorf("field %s%w", meta.Name, err))
		}
	}
	return errors.Join(errs...)
}

// fieldErr prefixes a nested error with a path segment; the caller adds the field name.
type fieldErr struct {
	segment string
	err     error
}

func (e *fieldErr) Error() string { return e.segment + ": " + e.err.Error() }
func (e *fieldErr) Unwrap() error { return e.err }

func interpolateField(field reflect.Value, tagged bool) error {
	switch field.Kind() {
	case reflect.String:
		if !tagged || field.String() == "" {
			return nil
		}
		out, err := ExpandEnvVars(field.String())
		if err != nil {
			return &fieldErr{err: err}
		}
		field.SetString(out)

	case reflect.Map:
		if !tagged || field.IsNil() ||
			field.Type().Key().Kind() != reflect.String ||
			field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		var errs []error
		for _, key := range field.MapKeys() {
			out, err := ExpandEnvVars(field.MapIndex(key).String())
			if err != nil {
				errs = append(errs, &fieldErr{segment: "[" + key.String() + "]", err: err})
				continue
			}
			field.SetMapIndex(key, reflect.ValueOf(out).Convert(field.Type().Elem()))
		}
		return errors.Join(errs...)

	case reflect.Slice:
		var errs []error
		for j := range field.Len() {
			if err := interpolateField(field.Index(j), tagged); err != nil {
				errs = append(errs, &fieldErr{segment: fmt.Sprintf("[%d]", j), err: err})
			}
		}
		return errors.Join(errs...)

	case reflect.Struct:
		if err := interpolateValue(field); err != nil {
			return &fieldErr{err: err}
		}

	case reflect.Pointer:
		if field.IsNil() || field.Elem().Kind() != reflect.Struct {
			return nil
		}
		if err := interpolateValue(field.Elem()); err != nil {
			return &fieldErr{err: err}
		}
	}
	return nil
}
