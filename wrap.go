package presets

import (
	"fmt"
	"reflect"
)

var argsType = reflect.TypeOf(Args(nil))

// paramSpec describes one declared keyword parameter of a wrapped callable.
// The declared set is computed once at wrap time, never per call.
type paramSpec struct {
	name  string
	index int // field index within the carrier struct
}

// callableInfo records a wrapped callable for Debug reports.
type callableInfo struct {
	path   string
	params []string
}

// wrapCallable builds the override-aware version of a module callable.
//
// The keyword-argument carrier is the callable's final parameter: either a
// presets.Args map (declared names come from the module field's preset tag)
// or an options struct passed by value (declared names come from its
// exported fields). Callables with no carrier, variadic callables, and
// fields tagged `preset:"-"` are left untouched; ok reports whether
// wrapping applied.
func (w *walker) wrapCallable(field reflect.StructField, fn reflect.Value, path string) (wrapped reflect.Value, params []string, ok bool) {
	tag := field.Tag.Get("preset")
	if tag == "-" {
		return reflect.Value{}, nil, false
	}

	ft := fn.Type()
	if ft.IsVariadic() || ft.NumIn() == 0 {
		return reflect.Value{}, nil, false
	}

	carrier := ft.In(ft.NumIn() - 1)
	switch {
	case carrier == argsType:
		declared := splitTagList(tag)
		if len(declared) == 0 {
			return reflect.Value{}, nil, false
		}
		return w.wrapArgsCallable(ft, fn, declared), declared, true

	case carrier.Kind() == reflect.Struct:
		specs := carrierParams(carrier)
		if len(specs) == 0 {
			return reflect.Value{}, nil, false
		}
		names := make([]string, len(specs))
		for i, p := range specs {
			names[i] = p.name
		}
		return w.wrapStructCallable(ft, fn, carrier, specs, path), names, true
	}

	return reflect.Value{}, nil, false
}

// wrapArgsCallable handles the map carrier form. For every declared
// parameter the caller did not supply, the current store override (if any)
// is injected. Caller-supplied keys always win, keys outside the declared
// set pass through untouched, and store entries outside the declared set
// are never injected.
func (w *walker) wrapArgsCallable(ft reflect.Type, fn reflect.Value, declared []string) reflect.Value {
	store := w.store
	last := ft.NumIn() - 1

	return reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		kw, _ := in[last].Interface().(Args)

		merged := make(Args, len(kw)+len(declared))
		for name, value := range kw {
			merged[name] = value
		}
		for _, name := range declared {
			if _, supplied := merged[name]; supplied {
				continue
			}
			if value, found := store.lookup(name); found {
				merged[name] = value
			}
		}

		in[last] = reflect.ValueOf(merged)
		return fn.Call(in)
	})
}

// wrapStructCallable handles the options-struct carrier form. A field
// counts as caller-supplied when it is non-zero; overrides for the
// remaining fields are merged into a copy of the struct through a
// weakly-typed decode, so the caller's value is never touched.
func (w *walker) wrapStructCallable(ft reflect.Type, fn reflect.Value, carrier reflect.Type, specs []paramSpec, path string) reflect.Value {
	store := w.store
	last := ft.NumIn() - 1

	return reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		opts := reflect.New(carrier)
		opts.Elem().Set(in[last])

		var inject map[string]any
		for _, p := range specs {
			if !opts.Elem().Field(p.index).IsZero() {
				continue
			}
			if value, found := store.lookup(p.name); found {
				if inject == nil {
					inject = make(map[string]any)
				}
				inject[p.name] = value
			}
		}

		if inject != nil {
			applyOverrides(opts.Interface(), inject, path)
		}

		in[last] = opts.Elem()
		return fn.Call(in)
	})
}

// applyOverrides merges override values into unset carrier fields. An
// override value that cannot be decoded into its parameter's type is caller
// misuse and panics, the same way a bad argument value would fail inside
// the call itself.
func applyOverrides(target any, inject map[string]any, path string) {
	decoder, err := newParamDecoder(target)
	if err != nil {
		panic(fmt.Sprintf("presets: %s: %v", path, err))
	}
	if err := decoder.Decode(inject); err != nil {
		panic(fmt.Sprintf("presets: %s: cannot apply overrides: %v", path, err))
	}
}

// carrierParams enumerates the declared parameters of an options-struct
// carrier: every exported field, named by its preset tag or the snake_case
// of the field name. `preset:"-"` opts a field out.
func carrierParams(t reflect.Type) []paramSpec {
	var specs []paramSpec
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("preset")
		if tag == "-" {
			continue
		}

		name := snakeCase(field.Name)
		if parts := splitTagList(tag); len(parts) > 0 {
			name = parts[0]
		}
		specs = append(specs, paramSpec{name: name, index: i})
	}
	return specs
}
