// Package clock abstracts "today" so date-bucketing behavior can be tested
// without wall-clock coupling.
package clock

import (
	"time"

	"github.com/JoquimMarques/DaySignal/internal/model"
)

type Clock interface {
	Now() time.Time
	Today() model.Date
}

// System reads the real wall clock in local time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Today() model.Date {
	return model.DateOf(time.Now())
}

// Fixed always reports the same instant. Tests advance it explicitly.
type Fixed struct {
	Instant time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{Instant: t}
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}

func (f *Fixed) Today() model.Date {
	return model.DateOf(f.Instant)
}

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
}

// AdvanceDays moves the fixed clock forward by whole calendar days.
func (f *Fixed) AdvanceDays(n int) {
	f.Instant = f.Instant.AddDate(0, 0, n)
}
