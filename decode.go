package presets

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// newParamDecoder builds the weakly-typed decoder used both for call-time
// override merging and for Scan. Parameter names match struct fields through
// the `preset` tag, or case- and underscore-insensitively against the field
// name ("sample_rate" matches SampleRate).
func newParamDecoder(target any) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "preset",
		WeaklyTypedInput: true,
		MatchName: func(mapKey, fieldName string) bool {
			return normalizeParamKey(mapKey) == normalizeParamKey(fieldName)
		},
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
}

// Scan decodes the current override set into the target struct or map.
// The target must be a non-nil pointer. Conversions are weakly typed, so
// overrides loaded from files or the environment decode into concrete
// fields.
func (s *Store) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	snapshot := make(map[string]any, len(s.overrides))
	for name, value := range s.overrides {
		snapshot[name] = value
	}

	decoder, err := newParamDecoder(target)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(snapshot); err != nil {
		return fmt.Errorf("failed to scan overrides into %T: %w", target, err)
	}

	return nil
}
