package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoquimMarques/DaySignal/internal/model"
)

func (m Model) openCapture(kind CaptureKind) Model {
	m.Capture.Active = true
	m.Capture.Kind = kind
	m.Capture.Selector = model.SelectToday
	m.captureInput.SetValue("")
	m.captureInput.Focus()
	if kind == CaptureGoal {
		m.CurrentScreen = ScreenHome
		m.Status = StatusBar{Text: "new goal"}
	} else {
		m.CurrentScreen = ScreenTasks
		m.Status = StatusBar{Text: "new task (tab flips the day)"}
	}
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Capture.Active = false
		m.captureInput.Blur()
		m.captureInput.SetValue("")
		m.Status = StatusBar{Text: "capture cancelled"}
		return m
	case "tab":
		if m.Capture.Kind == CaptureTask {
			if m.Capture.Selector == model.SelectToday {
				m.Capture.Selector = model.SelectTomorrow
			} else {
				m.Capture.Selector = model.SelectToday
			}
		}
		return m
	case "enter":
		return m.submitCapture()
	}

	var cmd tea.Cmd
	m.captureInput, cmd = m.captureInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) submitCapture() Model {
	text := m.captureInput.Value()
	m.Capture.Active = false
	m.captureInput.Blur()
	m.captureInput.SetValue("")

	if m.Capture.Kind == CaptureGoal {
		goal, err := m.tracker.CreateGoal(text)
		if err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		if goal == nil {
			m.Status = StatusBar{Text: "goal text is empty", IsError: true}
			return m
		}
		m.refreshViews()
		m.Status = StatusBar{Text: "goal added"}
		return m
	}

	task, err := m.tracker.CreateTask(text, m.Capture.Selector)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if task == nil {
		m.Status = StatusBar{Text: "task text is empty or too long", IsError: true}
		return m
	}
	m.refreshViews()
	m.checkChangeReminder()
	if m.Capture.Selector == model.SelectTomorrow {
		m.Status = StatusBar{Text: "task added for tomorrow"}
	} else {
		m.Status = StatusBar{Text: "task added"}
	}
	return m
}
