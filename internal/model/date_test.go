package model

import (
	"errors"
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	instant := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	if got := DateOf(instant); got != "2025-03-10" {
		t.Fatalf("DateOf = %q", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-03-10"); err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	for _, bad := range []string{"", "2025-13-01", "2025-03-32", "10/03/2025", "2025-3-1"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a, b := Date("2025-03-09"), Date("2025-03-10")
	if !a.Before(b) || b.Before(a) {
		t.Fatal("lexicographic order must match chronology")
	}
}

func TestAddDays(t *testing.T) {
	d := Date("2025-03-10")
	if got := d.AddDays(1); got != "2025-03-11" {
		t.Fatalf("AddDays(1) = %q", got)
	}
	if got := d.AddDays(-6); got != "2025-03-04" {
		t.Fatalf("AddDays(-6) = %q", got)
	}
	// Month boundary.
	if got := Date("2025-03-31").AddDays(1); got != "2025-04-01" {
		t.Fatalf("AddDays over month boundary = %q", got)
	}
}

func TestWeekday(t *testing.T) {
	// 2025-03-10 is a Monday.
	if got := Date("2025-03-10").Weekday(); got != "Mon" {
		t.Fatalf("Weekday = %q", got)
	}
}
