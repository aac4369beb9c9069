package utils

import (
	"fmt"
	"strings"
	"time"
)

// layoutNaive matches booking timestamps the backend emits without a zone
// designator. They are taken as UTC so both accepted shapes of the same
// nominal moment compare equal.
const layoutNaive = "2006-01-02T15:04:05"

// apiDateLayouts is the ordered list of parse attempts for timestamps coming
// off the wire. ISO-8601 (with or without fractional seconds) wins; the naive
// shape is the documented fallback.
var apiDateLayouts = []string{
	time.RFC3339Nano,
	layoutNaive,
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseAPIDate parses a timestamp string from the API, trying each accepted
// layout in order. The returned error names the offending input.
func ParseAPIDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range apiDateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date: %s", s)
}

// FormatAPIDate renders a timestamp the way the backend expects it.
func FormatAPIDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatHumanDate renders a medium-style date for user-facing text.
func FormatHumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
