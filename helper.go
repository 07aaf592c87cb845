package presets

import (
	"strconv"
	"strings"
	"unicode"
)

// snakeCase converts an exported Go field name to its parameter-name form,
// e.g. "SampleRate" -> "sample_rate", "NFFT" -> "nfft".
func snakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeParamKey folds a parameter name or field name into a canonical
// form for matching, ignoring case and underscores ("sample_rate" matches
// the field SampleRate).
func normalizeParamKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// splitTagList parses a comma-separated `preset:"b,c,d"` tag into parameter
// names, dropping empty entries.
func splitTagList(tag string) []string {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// parseValue interprets a raw string (from the environment) as the most
// specific scalar it parses as: int64, float64, bool, otherwise string.
func parseValue(raw string) any {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return raw
}

// flattenMap converts a nested map[string]any to a flat map with
// dot-notation keys, so sectioned preset files collapse into plain
// parameter names.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if sub, isMap := value.(map[string]any); isMap {
			for subName, subValue := range flattenMap(sub, name) {
				flat[subName] = subValue
			}
		} else {
			flat[name] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map using a dot-notation key,
// creating intermediate maps as needed. A non-map intermediate value is
// replaced by a new map.
func setNestedValue(nested map[string]any, name string, value any) {
	segments := strings.Split(name, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if !exists {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
			continue
		}

		if nextMap, isMap := next.(map[string]any); isMap {
			current = nextMap
		} else {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
		}
	}

	current[segments[len(segments)-1]] = value
}
