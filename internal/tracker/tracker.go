// Package tracker owns the task and goal collections and implements the
// lifecycle, grouping, and aggregation rules over them.
//
// The tracker is the single source of truth: all mutation goes through its
// lifecycle operations, every mutation concludes with a combined write of
// both collections through the persistence collaborator, and a single mutex
// serializes writers so sequence-order operations (relocate-on-finalize,
// move-up) never interleave.
package tracker

import (
	"encoding/json"
	"sync"

	"github.com/JoquimMarques/DaySignal/internal/clock"
	"github.com/JoquimMarques/DaySignal/internal/model"
	"github.com/JoquimMarques/DaySignal/internal/storage"
)

type Tracker struct {
	mu     sync.Mutex
	kv     storage.KV
	clock  clock.Clock
	tasks  []model.Task
	goals  []model.Goal
	lastID int64
}

// New hydrates a tracker from the persistence collaborator. Missing or
// malformed stored data yields empty collections: the application always
// starts in a usable state.
func New(kv storage.KV, clk clock.Clock) *Tracker {
	t := &Tracker{kv: kv, clock: clk}
	t.tasks = decodeTasks(readKey(kv, storage.KeyTasks))
	t.goals = decodeGoals(readKey(kv, storage.KeyGoals))
	for _, task := range t.tasks {
		if task.ID > t.lastID {
			t.lastID = task.ID
		}
	}
	for _, goal := range t.goals {
		if goal.ID > t.lastID {
			t.lastID = goal.ID
		}
	}
	return t
}

func readKey(kv storage.KV, key string) string {
	raw, err := kv.Get(key)
	if err != nil {
		return ""
	}
	return raw
}

func decodeTasks(raw string) []model.Task {
	if raw == "" {
		return nil
	}
	var stored []model.Task
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil
	}
	out := stored[:0]
	for _, task := range stored {
		if task.Validate() == nil {
			out = append(out, task)
		}
	}
	return out
}

func decodeGoals(raw string) []model.Goal {
	if raw == "" {
		return nil
	}
	var stored []model.Goal
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil
	}
	out := stored[:0]
	for _, goal := range stored {
		if goal.Validate() == nil {
			out = append(out, goal)
		}
	}
	return out
}

// persistLocked writes both collections in one atomic step. Callers hold
// the mutex.
func (t *Tracker) persistLocked() error {
	tasksJSON, err := json.Marshal(taskSlice(t.tasks))
	if err != nil {
		return err
	}
	goalsJSON, err := json.Marshal(goalSlice(t.goals))
	if err != nil {
		return err
	}
	return t.kv.SetAll(map[string]string{
		storage.KeyTasks: string(tasksJSON),
		storage.KeyGoals: string(goalsJSON),
	})
}

// taskSlice and goalSlice keep "[]" instead of "null" in storage for empty
// collections.
func taskSlice(in []model.Task) []model.Task {
	if in == nil {
		return []model.Task{}
	}
	return in
}

func goalSlice(in []model.Goal) []model.Goal {
	if in == nil {
		return []model.Goal{}
	}
	return in
}

// nextIDLocked derives a fresh id from the creation timestamp, bumping past
// the last issued id when two creations land on the same millisecond.
func (t *Tracker) nextIDLocked() int64 {
	id := t.clock.Now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// Tasks returns a copy of the full task sequence, archived entries
// included.
func (t *Tracker) Tasks() []model.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// ActiveTasks returns non-archived tasks in insertion order.
func (t *Tracker) ActiveTasks() []model.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeTasksLocked()
}

func (t *Tracker) activeTasksLocked() []model.Task {
	out := make([]model.Task, 0, len(t.tasks))
	for _, task := range t.tasks {
		if !task.Archived {
			out = append(out, task)
		}
	}
	return out
}

// Goals returns the goal sequence, applying lazy auto-expiry first: a
// pending goal whose day has passed flips to failed and the flip is
// persisted immediately. The transition is one-way; a persist failure here
// is retried by the next mutating write since collections are always
// written whole.
func (t *Tracker) Goals() []model.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expireGoalsLocked()
	out := make([]model.Goal, len(t.goals))
	copy(out, t.goals)
	return out
}

func (t *Tracker) expireGoalsLocked() int {
	today := t.clock.Today()
	expired := 0
	for i := range t.goals {
		if t.goals[i].Status == model.StatusPending && t.goals[i].Date.Before(today) {
			t.goals[i].Status = model.StatusFailed
			expired++
		}
	}
	if expired > 0 {
		_ = t.persistLocked()
	}
	return expired
}

// ExpireGoals runs the auto-expiry sweep explicitly and reports how many
// goals flipped. The midnight rollover job calls this.
func (t *Tracker) ExpireGoals() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expireGoalsLocked()
}

// PendingTodayCount counts today's non-archived pending tasks; the
// reminder policy consumes this.
func (t *Tracker) PendingTodayCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	today := t.clock.Today()
	count := 0
	for _, task := range t.tasks {
		if !task.Archived && task.Date == today && task.Status == model.StatusPending {
			count++
		}
	}
	return count
}
