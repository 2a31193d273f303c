package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts spreadsheet cells and decoded JSON values to int.
// Strings are trimmed; "12" and "12.0" convert, "12.5" and "abc" do not.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case []byte:
		return ToInt(string(v))
	case *string:
		if v == nil {
			return 0, false
		}
		return ToInt(*v)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}

// ToFloat converts numeric values and numeric strings to float64.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	case []byte:
		return ToFloat(string(v))
	case *string:
		if v == nil {
			return 0, false
		}
		return ToFloat(*v)
	default:
		return 0, false
	}
}

// ToString converts various types to string. nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true) and strings ("1", "true", "yes", "ya", "aktif").
func ToBool(val any) (bool, bool) {
	switch v := val.(type) {
	case bool:
		return v, true
	case int, int64, int32, uint, uint64, uint32, float64, float32:
		i, ok := ToInt(v)
		return i == 1, ok
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "ya", "aktif", "active":
			return true, true
		case "0", "false", "no", "n", "tidak", "nonaktif", "inactive":
			return false, true
		}
		return false, false
	case []byte:
		return ToBool(string(v))
	default:
		return false, false
	}
}
