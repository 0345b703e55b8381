package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts a decoded JSON value to an int64 using explicit type switching.
// It handles integer and float types, json.Number, numeric strings and byte
// slices. The second return value is false when val is absent or not a whole number.
func ToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case uint:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint32:
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return int64(v), true
	case float32:
		return ToInt64(float64(v))
	case json.Number:
		return ToInt64(string(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ToInt64(f)
		}
		return 0, false
	case []byte:
		return ToInt64(string(v))
	default:
		return 0, false
	}
}

// ToString converts various types to string. Nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
