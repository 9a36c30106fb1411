package synth

import (
	"strings"
	"time"
)

const isoLayout = "2006-01-02T15:04:05Z"

// FormatISO renders t as an ISO-8601 UTC timestamp with zero-second
// precision and an explicit Z designator.
func FormatISO(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(isoLayout)
}

// NowISO returns the current UTC time in the same format.
func NowISO() string {
	return FormatISO(time.Now())
}

// ParseISO parses an ISO-8601 timestamp, accepting both the Z designator
// and numeric offsets. Offset-less values are taken as UTC.
func ParseISO(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", v, time.UTC)
}
