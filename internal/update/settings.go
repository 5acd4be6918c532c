package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoquimMarques/DaySignal/internal/reminder"
	"github.com/JoquimMarques/DaySignal/internal/storage"
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "t":
		if m.ThemeName == "dark" {
			m.ThemeName = "light"
		} else {
			m.ThemeName = "dark"
		}
		m.themeFromStore = true
		_ = m.kv.Set(storage.KeyTheme, m.ThemeName)
		m.Status = StatusBar{Text: "theme: " + m.ThemeName}
	case "n":
		m.DesktopEnabled = !m.DesktopEnabled
		if m.DesktopEnabled {
			m.Permission = reminder.PermissionGranted
			m.Status = StatusBar{Text: "desktop notifications on"}
		} else {
			m.Status = StatusBar{Text: "desktop notifications off"}
		}
	case "p":
		// Re-surface the permission prompt on the home screen.
		m.PromptDismissed = false
		_ = m.kv.Set(storage.KeyPushPromptDismissed, "false")
		m.Permission = reminder.PermissionDefault
		m.Status = StatusBar{Text: "notification prompt reset"}
	case "D":
		m.PromptDismissed = true
		_ = m.kv.Set(storage.KeyPushPromptDismissed, "true")
		m.Status = StatusBar{Text: "notification prompt dismissed"}
	case "r":
		if !m.Confirm.Active {
			m.Confirm = ConfirmState{
				Active:   true,
				Question: "clear every task?",
				action:   confirmResetTasks,
			}
		}
	}
	return m
}
