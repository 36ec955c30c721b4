package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SplitTimestamp splits an ISO-8601 UTC timestamp ("2024-05-19T15:00:00Z") into its
// date and time parts, dropping the trailing Z. ok is false when there is no T separator.
func SplitTimestamp(value string) (date, clock string, ok bool) {
	date, clock, ok = strings.Cut(value, "T")
	if !ok {
		return value, "", false
	}
	return date, strings.TrimSuffix(clock, "Z"), true
}
