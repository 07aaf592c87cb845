package presets

import (
	"fmt"
	"os"
	"strings"
)

// LoadEnv merges overrides from environment variables carrying the given
// prefix. The remainder of the variable name, lower-cased, becomes the
// parameter name: with prefix "PRESETS_", PRESETS_SAMPLE_RATE=44100
// installs sample_rate=44100. Values parse leniently as int64, float64,
// bool, or string.
func (s *Store) LoadEnv(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("env prefix cannot be empty")
	}

	for _, entry := range os.Environ() {
		key, raw, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		if name == "" {
			continue
		}
		s.overrides[name] = parseValue(raw)
	}

	return nil
}
