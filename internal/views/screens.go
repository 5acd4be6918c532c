package views

import (
	"fmt"
	"strings"
)

type TaskLineData struct {
	ID       int64
	Text     string
	Status   string
	Selected bool
}

type HomePanelData struct {
	Greeting    string
	Phrase      string
	Total       int
	Completed   int
	Percent     int
	Progress    string
	RecentItems []TaskLineData
}

type TaskGroupData struct {
	Label string
	Items []TaskLineData
}

type TasksPanelData struct {
	Groups       []TaskGroupData
	CaptureView  string
	CaptureLabel string
}

type GoalLineData struct {
	ID       int64
	Text     string
	Status   string
	Selected bool
}

type GoalsPanelData struct {
	Goals       []GoalLineData
	CaptureView string
}

type CalendarCellData struct {
	Weekday   string
	Day       string
	Intensity float64
	IsToday   bool
}

type CalendarPanelData struct {
	Cells   []CalendarCellData
	Summary string
}

type SettingsPanelData struct {
	Theme                string
	DesktopNotifications bool
	Permission           string
	ReminderInterval     string
	PendingThreshold     int
	PromptDismissed      bool
}

func RenderHomePanel(data HomePanelData) string {
	var b strings.Builder
	b.WriteString("home:\n")
	if data.Greeting != "" {
		b.WriteString(data.Greeting + "\n")
	}
	b.WriteString(fmt.Sprintf("today: %d/%d done (%d%%)\n", data.Completed, data.Total, data.Percent))
	if data.Progress != "" {
		b.WriteString(data.Progress + "\n")
	}
	if data.Phrase != "" {
		b.WriteString(data.Phrase + "\n")
	}
	b.WriteString("recent:\n")
	if len(data.RecentItems) == 0 {
		b.WriteString("  (nothing yet)\n")
	}
	for _, item := range data.RecentItems {
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursorFor(item.Selected), statusBadge(item.Status), item.Text))
	}
	b.WriteString("actions: [1]home [2]tasks [3]calendar [4]settings [a]add [g]goal")
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.CaptureView != "" {
		b.WriteString(fmt.Sprintf("new (%s): %s\n", data.CaptureLabel, data.CaptureView))
	}
	b.WriteString("actions: [j/k]move [enter]done [f]fail [u]up [x]archive [tab]day\n")
	if len(data.Groups) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for _, group := range data.Groups {
		b.WriteString(fmt.Sprintf("\n%s:\n", group.Label))
		if len(group.Items) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, item := range group.Items {
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursorFor(item.Selected), statusBadge(item.Status), item.Text))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderGoalsPanel(data GoalsPanelData) string {
	var b strings.Builder
	b.WriteString("goals:\n")
	if data.CaptureView != "" {
		b.WriteString("new goal: " + data.CaptureView + "\n")
	}
	b.WriteString("actions: [enter]done [f]fail [d]delete\n")
	if len(data.Goals) == 0 {
		b.WriteString("(no goals today)")
		return strings.TrimSpace(b.String())
	}
	for _, goal := range data.Goals {
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursorFor(goal.Selected), statusBadge(goal.Status), goal.Text))
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")

	weekdays := make([]string, 0, len(data.Cells))
	days := make([]string, 0, len(data.Cells))
	cells := make([]string, 0, len(data.Cells))
	for _, cell := range data.Cells {
		weekdays = append(weekdays, fmt.Sprintf("%3s", cell.Weekday))
		day := cell.Day
		if cell.IsToday {
			day = "*" + day
		}
		days = append(days, fmt.Sprintf("%3s", day))
		cells = append(cells, fmt.Sprintf("%3s", heatCell(cell.Intensity)))
	}
	b.WriteString(strings.Join(weekdays, " ") + "\n")
	b.WriteString(strings.Join(days, " ") + "\n")
	b.WriteString(strings.Join(cells, " ") + "\n")
	if data.Summary != "" {
		b.WriteString(data.Summary)
	}
	return strings.TrimSpace(b.String())
}

// heatCell maps the intensity buckets onto shade characters. The buckets
// are fixed upstream, so exact comparisons are safe.
func heatCell(intensity float64) string {
	switch {
	case intensity >= 1.0:
		return "█"
	case intensity >= 0.7:
		return "▓"
	case intensity >= 0.4:
		return "▒"
	case intensity >= 0.2:
		return "░"
	case intensity >= 0.1:
		return "▫"
	default:
		return "·"
	}
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString(fmt.Sprintf("theme: %s\n", data.Theme))
	b.WriteString(fmt.Sprintf("desktop-notifications: %s\n", onOff(data.DesktopNotifications)))
	b.WriteString(fmt.Sprintf("permission: %s\n", data.Permission))
	b.WriteString(fmt.Sprintf("reminder-interval: %s\n", data.ReminderInterval))
	b.WriteString(fmt.Sprintf("pending-threshold: %d\n", data.PendingThreshold))
	if data.PromptDismissed {
		b.WriteString("notification-prompt: dismissed\n")
	}
	b.WriteString("actions: [t]theme [n]notifications [p]permission-prompt")
	return strings.TrimSpace(b.String())
}

// RenderConfirmPrompt shows the destructive-action gate. The prompt
// replaces the footer until answered.
func RenderConfirmPrompt(question string) string {
	if strings.TrimSpace(question) == "" {
		return ""
	}
	return fmt.Sprintf("confirm: %s [y/n]", question)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func cursorFor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func statusBadge(status string) string {
	switch status {
	case "completed":
		return "[x]"
	case "failed":
		return "[!]"
	default:
		return "[ ]"
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
