package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoquimMarques/DaySignal/internal/model"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.TasksCursor > 0 {
			m.TasksCursor--
		}
	case "down", "j":
		if m.TasksCursor < len(m.Rows)-1 {
			m.TasksCursor++
		}
	case "enter":
		m = m.finalizeSelectedTask(model.StatusCompleted)
	case "f":
		m = m.finalizeSelectedTask(model.StatusFailed)
	case "u":
		m = m.moveSelectedTaskUp()
	case "x":
		if row, ok := m.currentTaskRow(); ok {
			m.Confirm = ConfirmState{
				Active:   true,
				Question: "archive task \"" + row.Task.Text + "\"?",
				action:   confirmArchiveTask,
				targetID: row.Task.ID,
			}
		}
	}
	return m
}

func (m Model) finalizeSelectedTask(status model.Status) Model {
	row, ok := m.currentTaskRow()
	if !ok {
		return m
	}
	changed, err := m.tracker.UpdateTaskStatus(row.Task.ID, status)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !changed {
		m.Status = StatusBar{Text: "task already finalized"}
		return m
	}
	m.refreshViews()
	m.checkChangeReminder()
	if status == model.StatusCompleted {
		m.Status = StatusBar{Text: "task completed"}
	} else {
		m.Status = StatusBar{Text: "task marked failed"}
	}
	return m
}

func (m Model) moveSelectedTaskUp() Model {
	row, ok := m.currentTaskRow()
	if !ok {
		return m
	}
	moved, err := m.tracker.MoveTaskUp(row.Task.ID)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !moved {
		m.Status = StatusBar{Text: "task already at the top"}
		return m
	}
	m.refreshViews()
	if m.TasksCursor > 0 {
		m.TasksCursor--
	}
	m.Status = StatusBar{Text: "task moved up"}
	return m
}

func (m Model) archiveTask(id int64) Model {
	archived, err := m.tracker.ArchiveTask(id)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !archived {
		m.Status = StatusBar{Text: "task already archived"}
		return m
	}
	m.refreshViews()
	m.checkChangeReminder()
	m.Status = StatusBar{Text: "task archived"}
	return m
}
