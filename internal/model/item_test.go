package model

import (
	"errors"
	"strings"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:     1709990400000,
		Text:   "Buy milk",
		Status: StatusPending,
		Date:   "2025-03-10",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateInvalidStatus(t *testing.T) {
	task := Task{
		ID:     1,
		Text:   "Bad status",
		Status: Status("maybe"),
		Date:   "2025-03-10",
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	if err := (Task{Text: "no id", Status: StatusPending, Date: "2025-03-10"}).Validate(); err == nil {
		t.Fatal("expected error for missing id")
	}
	if err := (Task{ID: 1, Status: StatusPending, Date: "2025-03-10"}).Validate(); err == nil {
		t.Fatal("expected error for empty text")
	}
	if err := (Task{ID: 1, Text: "bad date", Status: StatusPending, Date: "not-a-date"}).Validate(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestGoalValidate(t *testing.T) {
	goal := Goal{
		ID:     2,
		Text:   "Read 20 pages",
		Status: StatusPending,
		Date:   "2025-03-10",
		Type:   GoalDaily,
	}
	if err := goal.Validate(); err != nil {
		t.Fatalf("expected valid goal, got error: %v", err)
	}

	goal.Type = GoalType("weekly")
	err := goal.Validate()
	if err == nil || !errors.Is(err, ErrInvalidGoalType) {
		t.Fatalf("expected ErrInvalidGoalType, got: %v", err)
	}
}

func TestStatusFinality(t *testing.T) {
	if StatusPending.IsFinal() {
		t.Fatal("pending must not be final")
	}
	if !StatusCompleted.IsFinal() || !StatusFailed.IsFinal() {
		t.Fatal("completed and failed are final")
	}
	if Status("maybe").IsValid() {
		t.Fatal("unknown status accepted")
	}
}

func TestDateSelectorResolve(t *testing.T) {
	today := Date("2025-03-10")

	got, err := SelectToday.Resolve(today)
	if err != nil || got != today {
		t.Fatalf("today resolved to %q, %v", got, err)
	}
	got, err = SelectTomorrow.Resolve(today)
	if err != nil || got != "2025-03-11" {
		t.Fatalf("tomorrow resolved to %q, %v", got, err)
	}
	_, err = DateSelector("yesterday").Resolve(today)
	if !errors.Is(err, ErrInvalidDateSelector) {
		t.Fatalf("expected ErrInvalidDateSelector, got: %v", err)
	}
}

func TestValidTaskText(t *testing.T) {
	if ValidTaskText("") || ValidTaskText("   ") {
		t.Fatal("blank text accepted")
	}
	if !ValidTaskText(strings.Repeat("a", MaxTaskTextLen)) {
		t.Fatal("text at the cap rejected")
	}
	if ValidTaskText(strings.Repeat("a", MaxTaskTextLen+1)) {
		t.Fatal("text over the cap accepted")
	}
	// The cap counts runes, not bytes.
	if !ValidTaskText(strings.Repeat("é", MaxTaskTextLen)) {
		t.Fatal("multibyte text at the cap rejected")
	}
}
