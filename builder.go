package presets

import (
	"errors"
	"fmt"
)

// Builder provides a fluent interface for assembling a wrapped module with
// overrides drawn from several sources.
type Builder[T any] struct {
	module    *T
	store     *Store
	overrides map[string]any
	file      string
	envPrefix string
}

// NewBuilder starts building a preset proxy around the given module.
func NewBuilder[T any](module *T) *Builder[T] {
	return &Builder[T]{module: module}
}

// WithStore uses an existing store instead of allocating a fresh one, so
// several proxy trees can share one override namespace.
func (b *Builder[T]) WithStore(store *Store) *Builder[T] {
	b.store = store
	return b
}

// WithOverrides merges explicit overrides. They take effect last, on top of
// file and environment values.
func (b *Builder[T]) WithOverrides(overrides map[string]any) *Builder[T] {
	if b.overrides == nil {
		b.overrides = make(map[string]any, len(overrides))
	}
	for name, value := range overrides {
		b.overrides[name] = value
	}
	return b
}

// WithFile loads overrides from a preset file (TOML or YAML by extension).
// A missing file is not fatal.
func (b *Builder[T]) WithFile(path string) *Builder[T] {
	b.file = path
	return b
}

// WithEnvPrefix loads overrides from environment variables carrying the
// prefix.
func (b *Builder[T]) WithEnvPrefix(prefix string) *Builder[T] {
	b.envPrefix = prefix
	return b
}

// Build populates the store and wraps the module. Sources apply lowest
// precedence first: preset file, then environment, then explicit overrides.
func (b *Builder[T]) Build() (*Preset[T], error) {
	store := b.store
	if store == nil {
		store = NewStore()
	}

	if b.file != "" {
		if err := store.LoadFile(b.file); err != nil && !errors.Is(err, ErrPresetNotFound) {
			return nil, err
		}
	}
	if b.envPrefix != "" {
		if err := store.LoadEnv(b.envPrefix); err != nil {
			return nil, err
		}
	}
	if len(b.overrides) > 0 {
		store.Update(b.overrides)
	}

	return NewWithStore(b.module, store)
}

// MustBuild is like Build but panics on error.
func (b *Builder[T]) MustBuild() *Preset[T] {
	p, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("preset initialization failed: %v", err))
	}
	return p
}
