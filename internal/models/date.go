package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used for every date in API responses.
const DateLayout = "Mon Jan 02 2006"

var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	DateLayout,
}

// ParseDate parses a caller-supplied date. Dates without a zone are UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// DayOf truncates t to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as a calendar day, e.g. "Tue Jan 02 2024".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
