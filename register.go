package presets

import (
	"fmt"
	"reflect"
)

// UpdateStruct installs overrides from the exported fields of a struct or
// struct pointer. Parameter names come from the `preset` tag or the
// snake_case of the field name; `preset:"-"` skips a field. Zero-valued
// fields are skipped, so a sparse struct only overrides what it sets;
// pointer fields store their pointee.
//
//	type Defaults struct {
//	    SampleRate int     `preset:"sr"`
//	    HopLength  int     // installs as "hop_length"
//	}
//	store.UpdateStruct(Defaults{SampleRate: 44100})
func (s *Store) UpdateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return fmt.Errorf("UpdateStruct requires a non-nil struct pointer or value")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("UpdateStruct requires a struct or struct pointer, got %T", v)
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("preset")
		if tag == "-" {
			continue
		}

		value := rv.Field(i)
		if value.IsZero() {
			continue
		}

		name := snakeCase(field.Name)
		if parts := splitTagList(tag); len(parts) > 0 {
			name = parts[0]
		}

		if value.Kind() == reflect.Ptr {
			value = value.Elem()
		}
		s.overrides[name] = value.Interface()
	}

	return nil
}
