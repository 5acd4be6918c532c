package tracker

import (
	"strings"

	"github.com/JoquimMarques/DaySignal/internal/model"
)

// Lifecycle operations. Violated preconditions are silent no-ops rather
// than errors: an invalid local action (double-click on a finalized item,
// stale id) simply does nothing. Errors are reserved for persistence
// failures.

// CreateTask appends a new pending task. It returns nil with no error when
// the trimmed text is empty or over the length cap, or when the selector is
// unknown: no item is created.
func (t *Tracker) CreateTask(text string, selector model.DateSelector) (*model.Task, error) {
	trimmed := strings.TrimSpace(text)
	if !model.ValidTaskText(trimmed) {
		return nil, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	date, err := selector.Resolve(t.clock.Today())
	if err != nil {
		return nil, nil
	}

	task := model.Task{
		ID:     t.nextIDLocked(),
		Text:   trimmed,
		Status: model.StatusPending,
		Date:   date,
	}
	t.tasks = append(t.tasks, task)
	if err := t.persistLocked(); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateGoal appends a new pending daily goal dated today. Empty trimmed
// text creates nothing.
func (t *Tracker) CreateGoal(text string) (*model.Goal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	goal := model.Goal{
		ID:     t.nextIDLocked(),
		Text:   trimmed,
		Status: model.StatusPending,
		Date:   t.clock.Today(),
		Type:   model.GoalDaily,
	}
	t.goals = append(t.goals, goal)
	if err := t.persistLocked(); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateTaskStatus finalizes a pending task and relocates it to the head
// of the sequence, so it renders last among same-day peers in the
// reverse-chronological display. Finalized items never transition again.
func (t *Tracker) UpdateTaskStatus(id int64, status model.Status) (bool, error) {
	if !status.IsFinal() {
		return false, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.taskIndexLocked(id)
	if idx < 0 || t.tasks[idx].Status != model.StatusPending {
		return false, nil
	}

	task := t.tasks[idx]
	task.Status = status
	t.tasks = append(t.tasks[:idx], t.tasks[idx+1:]...)
	t.tasks = append([]model.Task{task}, t.tasks...)

	if err := t.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateGoalStatus finalizes a pending goal, with the same head relocation
// as tasks.
func (t *Tracker) UpdateGoalStatus(id int64, status model.Status) (bool, error) {
	if !status.IsFinal() {
		return false, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.goalIndexLocked(id)
	if idx < 0 || t.goals[idx].Status != model.StatusPending {
		return false, nil
	}

	goal := t.goals[idx]
	goal.Status = status
	t.goals = append(t.goals[:idx], t.goals[idx+1:]...)
	t.goals = append([]model.Goal{goal}, t.goals...)

	if err := t.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// MoveTaskUp swaps the task with the next non-archived task later in the
// underlying sequence, which moves it one slot up in the reverse-rendered
// list. No-op when the task is missing or already the last visible one.
func (t *Tracker) MoveTaskUp(id int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.taskIndexLocked(id)
	if idx < 0 {
		return false, nil
	}

	next := -1
	for i := idx + 1; i < len(t.tasks); i++ {
		if !t.tasks[i].Archived {
			next = i
			break
		}
	}
	if next < 0 {
		return false, nil
	}

	t.tasks[idx], t.tasks[next] = t.tasks[next], t.tasks[idx]
	if err := t.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ArchiveTask soft-deletes a task. The record stays in storage forever;
// the flag is never unset. Confirmation is the caller's concern.
func (t *Tracker) ArchiveTask(id int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.taskIndexLocked(id)
	if idx < 0 || t.tasks[idx].Archived {
		return false, nil
	}

	t.tasks[idx].Archived = true
	if err := t.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteGoal physically removes a goal from the sequence.
func (t *Tracker) DeleteGoal(id int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.goalIndexLocked(id)
	if idx < 0 {
		return false, nil
	}

	t.goals = append(t.goals[:idx], t.goals[idx+1:]...)
	if err := t.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ResetTasks clears the task sequence. Goals are untouched: the reset
// action's scope is tasks only.
func (t *Tracker) ResetTasks() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tasks = nil
	return t.persistLocked()
}

func (t *Tracker) taskIndexLocked(id int64) int {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) goalIndexLocked(id int64) int {
	for i := range t.goals {
		if t.goals[i].ID == id {
			return i
		}
	}
	return -1
}
