package exporter

import (
	"fmt"
	"strconv"
)

// formatFloat formats a float64 using the shortest decimal representation
// that survives a round trip through strconv.ParseFloat, so parsing the
// output and re-formatting it yields the same text
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatInt formats an int64 value for tabular output
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatBool formats a boolean value for tabular output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatValue converts a scalar record value to its tabular text form
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return formatBool(v)
	case int:
		return formatInt(int64(v))
	case int32:
		return formatInt(int64(v))
	case int64:
		return formatInt(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return formatFloat(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
