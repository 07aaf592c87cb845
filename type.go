package presets

import (
	"fmt"
	"time"
)

// Typed getters over the override store. Each attempts a lenient conversion
// from whatever is actually stored, so values loaded from TOML, YAML, or the
// environment come back in the requested type.

// String retrieves an override as a string.
func (s *Store) String(name string) (string, error) {
	val, ok := s.lookup(name)
	if !ok {
		return "", fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	v, err := toString(val)
	if err != nil {
		return "", fmt.Errorf("parameter %q: %w", name, err)
	}
	return v, nil
}

// Int64 retrieves an override as an int64.
func (s *Store) Int64(name string) (int64, error) {
	val, ok := s.lookup(name)
	if !ok {
		return 0, fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	v, err := toInt64(val)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	return v, nil
}

// Float64 retrieves an override as a float64.
func (s *Store) Float64(name string) (float64, error) {
	val, ok := s.lookup(name)
	if !ok {
		return 0, fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	v, err := toFloat64(val)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	return v, nil
}

// Bool retrieves an override as a bool.
func (s *Store) Bool(name string) (bool, error) {
	val, ok := s.lookup(name)
	if !ok {
		return false, fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	v, err := toBool(val)
	if err != nil {
		return false, fmt.Errorf("parameter %q: %w", name, err)
	}
	return v, nil
}

// Duration retrieves an override as a time.Duration.
func (s *Store) Duration(name string) (time.Duration, error) {
	val, ok := s.lookup(name)
	if !ok {
		return 0, fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	v, err := toDuration(val)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	return v, nil
}
