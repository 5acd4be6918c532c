package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoquimMarques/DaySignal/internal/model"
)

// The home screen hosts the goal list, so its keys act on the goal cursor.
func (m Model) handleHomeKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.GoalsCursor > 0 {
			m.GoalsCursor--
		}
	case "down", "j":
		if m.GoalsCursor < len(m.Goals)-1 {
			m.GoalsCursor++
		}
	case "enter":
		m = m.finalizeSelectedGoal(model.StatusCompleted)
	case "f":
		m = m.finalizeSelectedGoal(model.StatusFailed)
	case "d":
		if goal, ok := m.currentGoal(); ok {
			m.Confirm = ConfirmState{
				Active:   true,
				Question: "delete goal \"" + goal.Text + "\"?",
				action:   confirmDeleteGoal,
				targetID: goal.ID,
			}
		}
	}
	return m
}

func (m Model) finalizeSelectedGoal(status model.Status) Model {
	goal, ok := m.currentGoal()
	if !ok {
		return m
	}
	changed, err := m.tracker.UpdateGoalStatus(goal.ID, status)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !changed {
		m.Status = StatusBar{Text: "goal already finalized"}
		return m
	}
	m.refreshViews()
	if status == model.StatusCompleted {
		m.Status = StatusBar{Text: "goal completed"}
	} else {
		m.Status = StatusBar{Text: "goal marked failed"}
	}
	return m
}

func (m Model) deleteGoal(id int64) Model {
	deleted, err := m.tracker.DeleteGoal(id)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !deleted {
		m.Status = StatusBar{Text: "goal already gone"}
		return m
	}
	m.refreshViews()
	m.Status = StatusBar{Text: "goal deleted"}
	return m
}
