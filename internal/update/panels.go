package update

import (
	"fmt"
	"strings"

	"github.com/JoquimMarques/DaySignal/internal/reminder"
	"github.com/JoquimMarques/DaySignal/internal/tracker"
	"github.com/JoquimMarques/DaySignal/internal/views"
)

func (m Model) renderHomeView() string {
	recent := make([]views.TaskLineData, 0, len(m.Recent))
	for _, task := range m.Recent {
		recent = append(recent, views.TaskLineData{
			ID:     task.ID,
			Text:   task.Text,
			Status: string(task.Status),
		})
	}
	stats := m.TodayStats
	phrase := views.PhraseFor(tracker.PhraseBucketFor(stats.Percent, stats.Total), m.rng)

	greeting := ""
	if m.Permission == reminder.PermissionDefault && !m.PromptDismissed {
		greeting = "enable desktop notifications in settings [4] to get reminders"
	}

	return views.RenderHomePanel(views.HomePanelData{
		Greeting:    greeting,
		Phrase:      phrase,
		Total:       stats.Total,
		Completed:   stats.Completed,
		Percent:     stats.Percent,
		Progress:    m.todayBar.ViewAs(float64(stats.Percent) / 100),
		RecentItems: recent,
	})
}

func (m Model) renderGoalsView() string {
	goals := make([]views.GoalLineData, 0, len(m.Goals))
	for i, goal := range m.Goals {
		goals = append(goals, views.GoalLineData{
			ID:       goal.ID,
			Text:     goal.Text,
			Status:   string(goal.Status),
			Selected: i == m.GoalsCursor,
		})
	}
	capture := ""
	if m.Capture.Active && m.Capture.Kind == CaptureGoal {
		capture = m.captureInput.View()
	}
	return views.RenderGoalsPanel(views.GoalsPanelData{
		Goals:       goals,
		CaptureView: capture,
	})
}

func (m Model) renderTasksView() string {
	groups := make([]views.TaskGroupData, 0)
	var current *views.TaskGroupData
	for i, row := range m.Rows {
		if current == nil || current.Label != row.GroupLabel {
			groups = append(groups, views.TaskGroupData{Label: row.GroupLabel})
			current = &groups[len(groups)-1]
		}
		current.Items = append(current.Items, views.TaskLineData{
			ID:       row.Task.ID,
			Text:     row.Task.Text,
			Status:   string(row.Task.Status),
			Selected: i == m.TasksCursor,
		})
	}

	capture := ""
	label := ""
	if m.Capture.Active && m.Capture.Kind == CaptureTask {
		capture = m.captureInput.View()
		label = string(m.Capture.Selector)
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		Groups:       groups,
		CaptureView:  capture,
		CaptureLabel: label,
	})
}

func (m Model) renderCalendarView() string {
	cells := make([]views.CalendarCellData, 0, len(m.Calendar))
	var today tracker.CalendarDay
	for _, day := range m.Calendar {
		cells = append(cells, views.CalendarCellData{
			Weekday:   day.Date.Weekday(),
			Day:       strings.TrimPrefix(string(day.Date)[8:], "0"),
			Intensity: day.Intensity,
			IsToday:   day.IsToday,
		})
		if day.IsToday {
			today = day
		}
	}
	summary := fmt.Sprintf("today: %d/%d done (%d%%)", today.Completed, today.Total, today.Percent)
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Cells:   cells,
		Summary: summary,
	})
}

func (m Model) renderSettingsView() string {
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Theme:                m.ThemeName,
		DesktopNotifications: m.DesktopEnabled,
		Permission:           string(m.Permission),
		ReminderInterval:     m.reminderInterval.String(),
		PendingThreshold:     m.pendingThreshold,
		PromptDismissed:      m.PromptDismissed,
	})
}

func (m Model) renderAboutView() string {
	return views.RenderMarkdown(aboutMarkdown, m.ThemeName)
}

const aboutMarkdown = `# daysignal

Track the day's tasks and goals from the terminal.

- tasks live on **today** or **tomorrow**
- goals expire at midnight
- the calendar shows the last week at a glance
`

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationView() string {
	if m.lastReminder == "" {
		return ""
	}
	return views.RenderNotification("info", m.lastReminder)
}
