package presets

import (
	"fmt"
	"reflect"
	"strings"
)

// Preset wraps a module-like value so that the default parameter values of
// its callables can be overridden through a shared store.
//
// A module is a pointer to a struct whose exported fields are its members:
// func-typed fields are callables, pointer-to-struct fields whose package is
// contained in the module's own package are submodules, and everything else
// is plain data. Module points at a proxy clone of the wrapped struct: the
// same type, with callables replaced by override-aware versions, submodules
// replaced by recursively wrapped clones sharing the same store, and all
// other members copied through as identical references. The attribute set of
// the clone is fixed once built; only the store mutates afterwards.
//
// Preset embeds the shared *Store, so the dictionary surface (Get, Set,
// Remove, Contains, Keys, Update) is available directly on it.
type Preset[T any] struct {
	*Store

	// Module is the wrapped clone of the underlying module.
	Module *T

	calls []callableInfo
}

// New wraps a module with a fresh, empty override store.
func New[T any](module *T) (*Preset[T], error) {
	return NewWithStore(module, NewStore())
}

// NewWithStore wraps a module around an existing store, so several proxy
// trees can share one override namespace. A nil store behaves like New.
// Proxies themselves are never shared between top-level calls: each call
// builds its own clone tree.
func NewWithStore[T any](module *T, store *Store) (*Preset[T], error) {
	if module == nil {
		return nil, fmt.Errorf("presets: requires a non-nil struct pointer, got %T", module)
	}
	rv := reflect.ValueOf(module)
	if rv.Type().Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("presets: requires a pointer to a struct, got %T", module)
	}
	if store == nil {
		store = NewStore()
	}

	w := &walker{
		store:    store,
		registry: make(map[any]reflect.Value),
	}
	clone := w.wrapModule(rv, "")

	return &Preset[T]{
		Store:  store,
		Module: clone.Interface().(*T),
		calls:  w.calls,
	}, nil
}

// Sub pairs an already-wrapped submodule node with the store it was built
// around, so the dictionary surface is reachable from any node of the tree:
//
//	q := presets.Sub(p, p.Module.Dsp)
//	q.Set("sr", 44100) // visible through p and every sibling
func Sub[T, S any](p *Preset[T], sub *S) *Preset[S] {
	return &Preset[S]{
		Store:  p.Store,
		Module: sub,
	}
}

// walker carries the construction-scoped state of one top-level wrap: the
// shared store and the registry of already-cloned submodules.
type walker struct {
	store    *Store
	registry map[any]reflect.Value
	calls    []callableInfo
}

// wrapModule clones one module struct, wrapping its members. The clone is
// registered before its fields are populated so cyclic or diamond-shaped
// submodule references resolve to the same clone instead of recursing
// forever. First write wins.
func (w *walker) wrapModule(mod reflect.Value, prefix string) reflect.Value {
	key := mod.Interface()
	if existing, seen := w.registry[key]; seen {
		return existing
	}

	elemType := mod.Type().Elem()
	clone := reflect.New(elemType)
	w.registry[key] = clone

	pkg := elemType.PkgPath()
	src := mod.Elem()
	dst := clone.Elem()

	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		if !field.IsExported() {
			continue
		}
		value := src.Field(i)

		switch {
		case field.Type.Kind() == reflect.Func && !value.IsNil():
			if wrapped, params, ok := w.wrapCallable(field, value, prefix+field.Name); ok {
				dst.Field(i).Set(wrapped)
				w.calls = append(w.calls, callableInfo{path: prefix + field.Name, params: params})
				continue
			}
			// Not wrappable: expose the original unchanged.
			dst.Field(i).Set(value)

		case isSubmoduleField(field.Type, pkg) && !value.IsNil():
			dst.Field(i).Set(w.wrapModule(value, prefix+field.Name+"."))

		default:
			// Plain data, nil members, and external references keep their
			// identity.
			dst.Field(i).Set(value)
		}
	}

	return clone
}

// isSubmoduleField reports whether a field holds a structural sub-component
// of the module: a pointer to a struct whose package path is contained in
// the parent module's package path. A type with no package path has no
// discoverable source location and is treated as opaque.
func isSubmoduleField(t reflect.Type, parentPkg string) bool {
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return false
	}
	pkg := t.Elem().PkgPath()
	if pkg == "" || parentPkg == "" {
		return false
	}
	return pkg == parentPkg || strings.HasPrefix(pkg, parentPkg+"/")
}
