package presets

import "time"

// Args is the map form of a keyword-argument carrier: a callable whose final
// parameter has this type receives its keyword arguments here. Wrapped
// callables merge store overrides into the map for the parameter names
// declared in the module field's `preset:"..."` tag; caller-supplied keys
// always win, and keys outside the declared set pass through untouched.
//
// A nil Args is valid and means "no keyword arguments".
type Args map[string]any

// Value returns the raw value for a keyword argument and whether it was
// present.
func (a Args) Value(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Float returns the keyword argument as a float64, or def when the argument
// is absent or not convertible.
func (a Args) Float(name string, def float64) float64 {
	v, ok := a[name]
	if !ok {
		return def
	}
	f, err := toFloat64(v)
	if err != nil {
		return def
	}
	return f
}

// Int returns the keyword argument as an int64, or def when the argument is
// absent or not convertible.
func (a Args) Int(name string, def int64) int64 {
	v, ok := a[name]
	if !ok {
		return def
	}
	i, err := toInt64(v)
	if err != nil {
		return def
	}
	return i
}

// String returns the keyword argument as a string, or def when the argument
// is absent or not convertible.
func (a Args) String(name string, def string) string {
	v, ok := a[name]
	if !ok {
		return def
	}
	s, err := toString(v)
	if err != nil {
		return def
	}
	return s
}

// Bool returns the keyword argument as a bool, or def when the argument is
// absent or not convertible.
func (a Args) Bool(name string, def bool) bool {
	v, ok := a[name]
	if !ok {
		return def
	}
	b, err := toBool(v)
	if err != nil {
		return def
	}
	return b
}

// Duration returns the keyword argument as a time.Duration, or def when the
// argument is absent or not convertible. Strings are parsed with
// time.ParseDuration; numeric values are nanoseconds.
func (a Args) Duration(name string, def time.Duration) time.Duration {
	v, ok := a[name]
	if !ok {
		return def
	}
	d, err := toDuration(v)
	if err != nil {
		return def
	}
	return d
}
