package entities

import (
	"strings"
	"time"
)

const (
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of time slots ("9:00 AM").
	TimeLayout = "3:04 PM"
)

// DateOnly drops the time-of-day, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey is the comparison key used for availability checks.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
