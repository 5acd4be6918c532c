package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/JoquimMarques/DaySignal/internal/clock"
	"github.com/JoquimMarques/DaySignal/internal/model"
	"github.com/JoquimMarques/DaySignal/internal/storage"
)

func testClock() *clock.Fixed {
	return clock.NewFixed(time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC))
}

func newTestTracker(t *testing.T) (*Tracker, *storage.MemoryKV, *clock.Fixed) {
	t.Helper()
	kv := storage.NewMemoryKV()
	clk := testClock()
	return New(kv, clk), kv, clk
}

func TestNewEmptyStore(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	if got := len(tr.Tasks()); got != 0 {
		t.Fatalf("expected no tasks, got %d", got)
	}
	if got := len(tr.Goals()); got != 0 {
		t.Fatalf("expected no goals, got %d", got)
	}
}

func TestHydrateRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	clk := testClock()
	tr := New(kv, clk)

	if _, err := tr.CreateTask("Buy milk", model.SelectToday); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := tr.CreateGoal("Read 20 pages"); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	reloaded := New(kv, clk)
	tasks := reloaded.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Buy milk" {
		t.Fatalf("unexpected tasks after reload: %+v", tasks)
	}
	goals := reloaded.Goals()
	if len(goals) != 1 || goals[0].Text != "Read 20 pages" {
		t.Fatalf("unexpected goals after reload: %+v", goals)
	}
}

func TestHydrateCorruptPayload(t *testing.T) {
	kv := storage.NewMemoryKV()
	if err := kv.Set(storage.KeyTasks, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.Set(storage.KeyGoals, `[{"id":0,"text":""}]`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tr := New(kv, testClock())
	if got := len(tr.Tasks()); got != 0 {
		t.Fatalf("corrupt tasks payload should hydrate empty, got %d", got)
	}
	if got := len(tr.Goals()); got != 0 {
		t.Fatalf("invalid goal records should be dropped, got %d", got)
	}
}

func TestHydrateFiltersInvalidRecords(t *testing.T) {
	kv := storage.NewMemoryKV()
	stored := []model.Task{
		{ID: 1, Text: "keep", Status: model.StatusPending, Date: "2025-03-10"},
		{ID: 2, Text: "", Status: model.StatusPending, Date: "2025-03-10"},
		{ID: 3, Text: "bad status", Status: "maybe", Date: "2025-03-10"},
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := kv.Set(storage.KeyTasks, string(raw)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tr := New(kv, testClock())
	tasks := tr.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Fatalf("expected only the valid record to survive, got %+v", tasks)
	}
}

func TestPersistedEmptyCollectionsAreArrays(t *testing.T) {
	tr, kv, _ := newTestTracker(t)
	if err := tr.ResetTasks(); err != nil {
		t.Fatalf("ResetTasks: %v", err)
	}
	raw, err := kv.Get(storage.KeyTasks)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("empty collection stored as %q, want []", raw)
	}
}

func TestNextIDMonotonic(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	first, err := tr.CreateTask("one", model.SelectToday)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	second, err := tr.CreateTask("two", model.SelectToday)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids must be strictly increasing: %d then %d", first.ID, second.ID)
	}
}

func TestGoalsAutoExpire(t *testing.T) {
	tr, kv, clk := newTestTracker(t)
	goal, err := tr.CreateGoal("Stretch")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	clk.AdvanceDays(1)
	goals := tr.Goals()
	if len(goals) != 1 || goals[0].Status != model.StatusFailed {
		t.Fatalf("past-due pending goal should read as failed, got %+v", goals)
	}

	reloaded := New(kv, clk)
	goals = reloaded.Goals()
	if len(goals) != 1 || goals[0].Status != model.StatusFailed {
		t.Fatalf("expiry flip should be persisted, got %+v", goals)
	}

	// Expiry is one-way; finalized goals are never revisited.
	if ok, err := tr.UpdateGoalStatus(goal.ID, model.StatusCompleted); ok || err != nil {
		t.Fatalf("finalized goal must not transition: ok=%v err=%v", ok, err)
	}
}

func TestExpireGoalsCount(t *testing.T) {
	tr, _, clk := newTestTracker(t)
	if _, err := tr.CreateGoal("a"); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := tr.CreateGoal("b"); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	if n := tr.ExpireGoals(); n != 0 {
		t.Fatalf("nothing due yet, expired %d", n)
	}
	clk.AdvanceDays(2)
	if n := tr.ExpireGoals(); n != 2 {
		t.Fatalf("expected 2 expired goals, got %d", n)
	}
	if n := tr.ExpireGoals(); n != 0 {
		t.Fatalf("second sweep should find nothing, got %d", n)
	}
}

func TestPendingTodayCount(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	if _, err := tr.CreateTask("today one", model.SelectToday); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := tr.CreateTask("today two", model.SelectToday); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := tr.CreateTask("tomorrow", model.SelectTomorrow); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if got := tr.PendingTodayCount(); got != 2 {
		t.Fatalf("PendingTodayCount = %d, want 2", got)
	}

	task, err := tr.CreateTask("done soon", model.SelectToday)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := tr.UpdateTaskStatus(task.ID, model.StatusCompleted); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if got := tr.PendingTodayCount(); got != 2 {
		t.Fatalf("finalized task still counted: got %d, want 2", got)
	}
}
