package util

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float coerces an arbitrary decoded-JSON value into a float64.
// It accepts Go numeric types, json.Number, and numeric strings.
// NaN and infinities are rejected. The second return value reports
// whether a usable number was found.
func Float(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOr coerces v like Float, returning def when no usable number is found.
func FloatOr(v any, def float64) float64 {
	f, ok := Float(v)
	if !ok {
		return def
	}
	return f
}

// Clamp01 clamps f into the [0, 1] interval.
func Clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
