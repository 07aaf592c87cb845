package presets

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Lenient scalar conversions shared by the Store typed getters and the Args
// accessors. These accept the cross-type inputs that commonly end up in an
// override store (TOML integers for float parameters, env strings, etc.).

func toString(val any) (string, error) {
	if val == nil {
		return "", nil
	}

	if s, ok := val.(string); ok {
		return s, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case error:
		return v.Error(), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}

	return "", fmt.Errorf("cannot convert type %T to string", val)
}

func toInt64(val any) (int64, error) {
	if val == nil {
		return 0, fmt.Errorf("cannot convert nil to int64")
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(^uint64(0)>>1) {
			return 0, fmt.Errorf("cannot convert %d (type %T) to int64: overflow", u, val)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		s := rv.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64", s)
	}

	return 0, fmt.Errorf("cannot convert type %T to int64", val)
}

func toFloat64(val any) (float64, error) {
	if val == nil {
		return 0, fmt.Errorf("cannot convert nil to float64")
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		s := rv.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		return 0, fmt.Errorf("cannot convert string %q to float64", s)
	}

	return 0, fmt.Errorf("cannot convert type %T to float64", val)
}

func toBool(val any) (bool, error) {
	if val == nil {
		return false, fmt.Errorf("cannot convert nil to bool")
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		s := rv.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		return false, fmt.Errorf("cannot convert string %q to bool", s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool", val)
}

func toDuration(val any) (time.Duration, error) {
	if val == nil {
		return 0, fmt.Errorf("cannot convert nil to duration")
	}

	switch v := val.(type) {
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to duration: %w", v, err)
		}
		return d, nil
	}

	// Numeric values are interpreted as nanoseconds, matching time.Duration.
	if i, err := toInt64(val); err == nil {
		return time.Duration(i), nil
	}

	return 0, fmt.Errorf("cannot convert type %T to duration", val)
}
