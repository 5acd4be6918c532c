package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y", "enter":
		confirm := m.Confirm
		m.Confirm = ConfirmState{}
		switch confirm.action {
		case confirmArchiveTask:
			return m.archiveTask(confirm.targetID)
		case confirmDeleteGoal:
			return m.deleteGoal(confirm.targetID)
		case confirmResetTasks:
			return m.resetTasks()
		}
	case "n", "N", "esc":
		m.Confirm = ConfirmState{}
		m.Status = StatusBar{Text: "cancelled"}
	}
	return m
}

func (m Model) resetTasks() Model {
	if err := m.tracker.ResetTasks(); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.refreshViews()
	m.Status = StatusBar{Text: "all tasks cleared"}
	return m
}
