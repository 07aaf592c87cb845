package presets

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a preset file and merges its values into the store.
// The format is chosen by extension: ".yaml" and ".yml" are YAML, everything
// else is TOML. Nested tables flatten into dot-notation parameter names.
// A missing file returns an error wrapping ErrPresetNotFound.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q: %w", path, ErrPresetNotFound)
		}
		return fmt.Errorf("failed to read preset file %q: %w", path, err)
	}

	loaded := make(map[string]any)
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("failed to parse YAML preset file %q: %w", path, err)
		}
	} else {
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("failed to parse TOML preset file %q: %w", path, err)
		}
	}

	s.Update(flattenMap(loaded, ""))
	return nil
}

// SaveFile writes the current override set to a preset file, atomically via
// a temporary file in the target directory. The format follows the same
// extension rule as LoadFile.
func (s *Store) SaveFile(path string) error {
	nested := make(map[string]any)
	for name, value := range s.overrides {
		setNestedValue(nested, name, value)
	}

	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = yaml.Marshal(nested)
	} else {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(nested)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preset directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary preset file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once the rename succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary preset file %q: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary preset file %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary preset file %q: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file to %q: %w", path, err)
	}
	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on preset file %q: %w", path, err)
	}

	return nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
