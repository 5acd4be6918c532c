// Package model defines the task and goal records tracked by the
// application, together with the validation applied at the persistence
// boundary.
//
// Tasks and goals share an overlapping shape (id, text, status, date) but
// diverge in lifecycle: tasks are soft-deleted via an archived flag and are
// never removed from storage, while goals are hard-deleted and auto-expire
// to failed once their day has passed.
package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidStatus       = errors.New("model: invalid item status")
	ErrInvalidGoalType     = errors.New("model: invalid goal type")
	ErrInvalidDateSelector = errors.New("model: invalid date selector")
)

// MaxTaskTextLen caps user-entered task descriptions.
const MaxTaskTextLen = 75

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status is a terminal one. Completed and
// failed items never transition again.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type GoalType string

const (
	// GoalDaily is the only type currently produced. The field is kept on
	// the record so stored goals can grow a weekly type without a schema
	// change.
	GoalDaily GoalType = "daily"
)

func (g GoalType) IsValid() bool {
	return g == GoalDaily
}

// DateSelector is the user's choice when scheduling a new task.
type DateSelector string

const (
	SelectToday    DateSelector = "today"
	SelectTomorrow DateSelector = "tomorrow"
)

func (s DateSelector) IsValid() bool {
	return s == SelectToday || s == SelectTomorrow
}

// Resolve turns the selector into an absolute date relative to today.
func (s DateSelector) Resolve(today Date) (Date, error) {
	switch s {
	case SelectToday:
		return today, nil
	case SelectTomorrow:
		return today.AddDays(1), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDateSelector, s)
	}
}

// Task is a user-created actionable item scheduled for today or tomorrow.
type Task struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Status   Status `json:"status"`
	Date     Date   `json:"date"`
	Archived bool   `json:"archived,omitempty"`
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if _, err := ParseDate(string(t.Date)); err != nil {
		return fmt.Errorf("model: task date %q: %w", t.Date, err)
	}
	return nil
}

// Goal is a user-created daily objective, always dated its creation day.
type Goal struct {
	ID     int64    `json:"id"`
	Text   string   `json:"text"`
	Status Status   `json:"status"`
	Date   Date     `json:"date"`
	Type   GoalType `json:"type"`
}

func (g Goal) Validate() error {
	if g.ID <= 0 {
		return errors.New("model: goal id is required")
	}
	if strings.TrimSpace(g.Text) == "" {
		return errors.New("model: goal text is required")
	}
	if !g.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, g.Status)
	}
	if !g.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidGoalType, g.Type)
	}
	if _, err := ParseDate(string(g.Date)); err != nil {
		return fmt.Errorf("model: goal date %q: %w", g.Date, err)
	}
	return nil
}

// ValidTaskText reports whether trimmed user input is acceptable for a new
// task. Goals share the non-empty rule but carry no length cap.
func ValidTaskText(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed != "" && utf8.RuneCountInString(trimmed) <= MaxTaskTextLen
}

// Item is the common read-side shape of tasks and goals, used by the
// calendar aggregation which counts both.
type Item interface {
	ItemDate() Date
	ItemStatus() Status
}

func (t Task) ItemDate() Date     { return t.Date }
func (t Task) ItemStatus() Status { return t.Status }

func (g Goal) ItemDate() Date     { return g.Date }
func (g Goal) ItemStatus() Status { return g.Status }
