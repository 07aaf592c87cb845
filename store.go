package presets

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a requested parameter has no override
// installed. Use errors.Is to distinguish it from errors produced by
// wrapped callables.
var ErrNotFound = errors.New("parameter is not overridden")

// ErrPresetNotFound is returned by LoadFile when the preset file does not
// exist. It is typically non-fatal: the store simply keeps its current
// contents.
var ErrPresetNotFound = errors.New("preset file not found")

// Store is the shared mapping from parameter name to override value.
//
// Exactly one Store backs a proxy tree: every submodule proxy created by the
// same top-level New call references the same instance, so an override
// installed anywhere is visible everywhere immediately.
//
// A Store performs no locking. Concurrent mutation from multiple goroutines
// without external synchronization is the caller's responsibility.
type Store struct {
	overrides map[string]any
}

// NewStore creates an empty override store. Most callers never need this
// directly; New allocates one per proxy tree. Use it with NewWithStore to
// share a single override namespace across several proxy trees.
func NewStore() *Store {
	return &Store{
		overrides: make(map[string]any),
	}
}

// Get retrieves the current override value for a parameter name.
// It returns an error wrapping ErrNotFound if no override is installed.
func (s *Store) Get(name string) (any, error) {
	value, ok := s.overrides[name]
	if !ok {
		return nil, fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	return value, nil
}

// Set installs or replaces the override for a parameter name. The new value
// takes effect for every subsequent call through any wrapped callable in the
// proxy tree that declares a parameter of that name.
func (s *Store) Set(name string, value any) {
	s.overrides[name] = value
}

// Remove deletes the override for a parameter name, so the callable's native
// default (or a caller-supplied value) governs again. It returns an error
// wrapping ErrNotFound if no override is installed.
func (s *Store) Remove(name string) error {
	if _, ok := s.overrides[name]; !ok {
		return fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	delete(s.overrides, name)
	return nil
}

// Contains reports whether an override is currently installed for the name.
func (s *Store) Contains(name string) bool {
	_, ok := s.overrides[name]
	return ok
}

// Keys returns the currently overridden parameter names, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.overrides))
	for name := range s.overrides {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Update merges the provided mapping into the store. Values from the
// argument win on key collision.
func (s *Store) Update(overrides map[string]any) {
	for name, value := range overrides {
		s.overrides[name] = value
	}
}

// Len returns the number of installed overrides.
func (s *Store) Len() int {
	return len(s.overrides)
}

// Clone returns an independent copy of the store. The override values
// themselves are not deep-copied.
func (s *Store) Clone() *Store {
	clone := NewStore()
	for name, value := range s.overrides {
		clone.overrides[name] = value
	}
	return clone
}

// lookup is the call-time fast path used by wrapped callables.
func (s *Store) lookup(name string) (any, bool) {
	value, ok := s.overrides[name]
	return value, ok
}
