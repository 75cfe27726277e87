package invoice

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate parses an ISO date or timestamp.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatLong renders s as "January 02, 2006", or "" when s is not a date.
func FormatLong(s string) string {
	return formatDate(s, "January 02, 2006")
}

// FormatShort renders s as "Jan 02, 2006", or "" when s is not a date.
func FormatShort(s string) string {
	return formatDate(s, "Jan 02, 2006")
}

func formatDate(s, layout string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format(layout)
}
