package stats

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceFloat reads a raw JSON value as a number. Missing or unparsable
// values become 0 so a malformed manual entry degrades to zero contribution
// instead of halting aggregation.
func CoerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}
