package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads a UTC instant from user input.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q, use YYYY-MM-DD[ HH:MM[:SS]] or RFC 3339", s)
}

// ParseStep accepts Horizons-style steps ("1d", "6 h", "30m") and Go
// durations ("90m", "1h30m").
func ParseStep(s string) (time.Duration, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if compact == "" {
		return 0, fmt.Errorf("empty step")
	}

	if n, unit := splitCount(compact); unit != "" {
		var size time.Duration
		switch strings.ToLower(unit) {
		case "d", "day", "days":
			size = 24 * time.Hour
		case "h", "hour", "hours":
			size = time.Hour
		case "m", "min", "minute", "minutes":
			size = time.Minute
		}
		if size > 0 {
			if n > math.MaxInt64/int64(size) {
				return 0, fmt.Errorf("step too large %q", s)
			}
			return time.Duration(n) * size, nil
		}
	}

	d, err := time.ParseDuration(compact)
	if err != nil {
		return 0, fmt.Errorf("unrecognized step %q", s)
	}
	return d, nil
}

// splitCount splits "12d" into 12 and "d". unit is empty unless s is an
// integer followed only by letters.
func splitCount(s string) (int64, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, ""
	}
	for _, r := range s[i:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return 0, ""
		}
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, ""
	}
	return n, s[i:]
}
