// Package timeutil holds the calendar arithmetic shared by analytics and
// the CLI: ISO date parsing, day and week iteration, and human-friendly
// lookback windows.
package timeutil

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", v, err)
	}
	return t, nil
}

// FormatDate renders a time as its YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(layoutISO)
}

// ValidDate reports whether v is a well-formed calendar date.
func ValidDate(v string) bool {
	_, err := ParseDate(v)
	return err == nil
}

// Today returns the current local calendar date.
func Today() string {
	return FormatDate(time.Now())
}

// EachDay returns every calendar date in the closed range [from, to], in
// order. An inverted or unparsable range yields nil.
func EachDay(from, to string) []string {
	start, err := ParseDate(from)
	if err != nil {
		return nil
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil
	}
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days
}

// WeekStart returns the Sunday on or before the given date.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// EachWeek returns the start date of every calendar week intersecting the
// closed range [from, to], in order.
func EachWeek(from, to string) []string {
	start, err := ParseDate(from)
	if err != nil {
		return nil
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil
	}
	var weeks []string
	for w := WeekStart(start); !w.After(end); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, FormatDate(w))
	}
	return weeks
}
