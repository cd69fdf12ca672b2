// Package dateutil handles calendar dates that carry no time of day.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Parse reads a YYYY-MM-DD string into UTC midnight.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseOptional returns nil for an empty string.
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Truncate drops the time of day, keeping the calendar date as seen in t's location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
