package dateutil

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// Parse reads a YYYY-MM-DD string as a UTC calendar date.
func Parse(v string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, v, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// StartOfDay drops the clock part, keeping the calendar date as UTC midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekEnd is the last calendar day of the week beginning at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return StartOfDay(weekStart).AddDate(0, 0, 6)
}

// Within reports whether the calendar date of t lies in [from, to].
func Within(t, from, to time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(StartOfDay(from)) && !d.After(StartOfDay(to))
}
