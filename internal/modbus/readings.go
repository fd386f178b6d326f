package modbus

import "fmt"

// Readings is the flat result of one poll cycle, keyed by reading name.
// Values are float64 (scaled temperatures and humidities), int (counters
// and the controller id), bool (state flags) or nil when the device
// reported the "no reading" sentinel. While a parse is in flight a
// composite entry transiently holds a []any of its parts.
type Readings map[string]any

// Float returns the value under key as a float64. The second return is
// false when the key is absent, unknown (sentinel) or not numeric.
func (r Readings) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Int returns the value under key as an int.
func (r Readings) Int(key string) (int, bool) {
	v, ok := r[key].(int)
	return v, ok
}

// Bool returns the flag under key.
func (r Readings) Bool(key string) (bool, bool) {
	v, ok := r[key].(bool)
	return v, ok
}

// Known reports whether key is present with an actual value. A key
// holding the sentinel nil is present but not known.
func (r Readings) Known(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// merge copies all entries of other into r, last write wins.
func (r Readings) merge(other Readings) {
	for k, v := range other {
		r[k] = v
	}
}

// CombineComposites collapses every composite entry still present as a
// part list into a single integer. The combination rule is fixed: two
// parts, high first, combined as high*1000 + low. Any other arity is a
// schema bug and fails the poll.
func (r Readings) CombineComposites() error {
	for key, v := range r {
		parts, ok := v.([]any)
		if !ok {
			continue
		}
		if len(parts) != 2 {
			return &DecodeError{Message: fmt.Sprintf("composite %q has %d parts, want 2", key, len(parts))}
		}
		high, okHigh := parts[0].(int)
		low, okLow := parts[1].(int)
		if !okHigh || !okLow {
			return &DecodeError{Message: fmt.Sprintf("composite %q has non-integer parts", key)}
		}
		r[key] = high*1000 + low
	}
	return nil
}
