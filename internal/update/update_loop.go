package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoquimMarques/DaySignal/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Confirm.Active {
			return m.handleConfirmKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Capture.Active {
			return m.handleCaptureKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Home:
			m.CurrentScreen = ScreenHome
			return m, nil
		case m.Keys.Tasks:
			m.CurrentScreen = ScreenTasks
			return m, nil
		case m.Keys.Calendar:
			m.CurrentScreen = ScreenCalendar
			return m, nil
		case m.Keys.Settings:
			m.CurrentScreen = ScreenSettings
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "a":
			return m.openCapture(CaptureTask), nil
		case "g":
			return m.openCapture(CaptureGoal), nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentScreen {
		case ScreenHome:
			return m.handleHomeKey(typed), nil
		case ScreenTasks:
			return m.handleTasksKey(typed), nil
		case ScreenSettings:
			return m.handleSettingsKey(typed), nil
		}
		return m, nil

	case SwitchScreenMsg:
		if isKnownScreen(typed.Screen) {
			m.CurrentScreen = typed.Screen
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case ReminderCheckMsg:
		return m.onReminderCheck(), nil
	case DayRolloverMsg:
		return m.onDayRollover(), nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentScreen {
	case ScreenHome:
		leftPane = m.renderHomeView()
		rightPane = m.renderGoalsView() + m.renderHelpIfVisible()
	case ScreenTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ScreenCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderHelpIfVisible()
	case ScreenSettings:
		leftPane = m.renderSettingsView()
		rightPane = m.renderAboutView() + m.renderHelpIfVisible()
	}

	footer := fmt.Sprintf("keys: %s home | %s tasks | %s cal | %s settings | a add | g goal | / cmd | %s help | %s quit",
		m.Keys.Home, m.Keys.Tasks, m.Keys.Calendar, m.Keys.Settings, m.Keys.Help, m.Keys.Quit)
	if m.Confirm.Active {
		footer = views.RenderConfirmPrompt(m.Confirm.Question)
	}

	return views.RenderApp(views.ThemeByName(m.ThemeName), views.AppData{
		Header:       fmt.Sprintf("daysignal | %s | %s", m.CurrentScreen, m.clk.Today()),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: m.renderNotificationView(),
		Footer:       footer,
	})
}

func isKnownScreen(s Screen) bool {
	switch s {
	case ScreenHome, ScreenTasks, ScreenCalendar, ScreenSettings:
		return true
	default:
		return false
	}
}
