package host

// Float64 converts various numeric types carried in event payloads to float64.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Int64 converts various numeric types carried in event payloads to int64.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// String converts an event payload value to a string, returning "" for
// non-string values.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Bool converts an event payload value to a bool, returning false for
// non-bool values.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}
