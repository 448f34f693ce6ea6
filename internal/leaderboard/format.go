package leaderboard

import (
	"fmt"
	"math"
	"strconv"
)

// FormatValue renders a computed value for display: percentages get one
// decimal place and a % sign, averages and ratings one decimal place, and
// everything else a grouped integer.
func FormatValue(value float64, format Format) string {
	switch format {
	case FormatPct:
		return fmt.Sprintf("%.1f%%", value)
	case FormatAvg, FormatRating:
		return fmt.Sprintf("%.1f", value)
	default:
		return groupInt(int64(math.Round(value)))
	}
}

// groupInt inserts thousands separators into an integer
func groupInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
