package model

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("model: invalid date")

// Date is a calendar day with no time component, stored as "YYYY-MM-DD".
// The layout sorts lexicographically in chronological order, which the
// grouping code relies on.
type Date string

// DateOf truncates a wall-clock instant to its calendar day.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates a stored date string.
func ParseDate(raw string) (Date, error) {
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", ErrInvalidDate
	}
	return Date(raw), nil
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// AddDays returns the date offset by n calendar days. A malformed receiver
// is returned unchanged.
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

// Time returns midnight UTC of the calendar day.
func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

func (d Date) String() string {
	return string(d)
}

// Weekday returns the short weekday label used by the calendar view.
func (d Date) Weekday() string {
	return d.Time().Format("Mon")
}
