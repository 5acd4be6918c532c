// Package update is the terminal UI: a bubbletea model over the tracker,
// reminder policy, and views.
package update

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/JoquimMarques/DaySignal/internal/clock"
	"github.com/JoquimMarques/DaySignal/internal/config"
	"github.com/JoquimMarques/DaySignal/internal/model"
	"github.com/JoquimMarques/DaySignal/internal/reminder"
	"github.com/JoquimMarques/DaySignal/internal/storage"
	"github.com/JoquimMarques/DaySignal/internal/tracker"
	"github.com/JoquimMarques/DaySignal/internal/views"
)

type Screen string

const (
	ScreenHome     Screen = "Home"
	ScreenTasks    Screen = "Tasks"
	ScreenCalendar Screen = "Calendar"
	ScreenSettings Screen = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home     string
	Tasks    string
	Calendar string
	Settings string
	Help     string
	Quit     string
}

type CaptureKind string

const (
	CaptureTask CaptureKind = "task"
	CaptureGoal CaptureKind = "goal"
)

// CaptureState is the inline form for a new task or goal. For tasks, tab
// flips the day between today and tomorrow.
type CaptureState struct {
	Active   bool
	Kind     CaptureKind
	Selector model.DateSelector
}

type confirmAction string

const (
	confirmArchiveTask confirmAction = "archive_task"
	confirmDeleteGoal  confirmAction = "delete_goal"
	confirmResetTasks  confirmAction = "reset_tasks"
)

// ConfirmState gates destructive actions behind a y/n prompt.
type ConfirmState struct {
	Active   bool
	Question string
	action   confirmAction
	targetID int64
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// TaskRow pairs a task with the date group it renders under, in display
// order.
type TaskRow struct {
	Task       model.Task
	GroupLabel string
}

type Model struct {
	CurrentScreen Screen

	tracker  *tracker.Tracker
	policy   *reminder.Policy
	notifier reminder.Notifier
	clk      clock.Clock
	kv       storage.KV

	Permission      reminder.Permission
	DesktopEnabled  bool
	ThemeName       string
	PromptDismissed bool

	// Cached reads, refreshed after every mutation.
	GroupKeys  []model.Date
	Rows       []TaskRow
	Goals      []model.Goal
	TodayStats tracker.Stats
	Calendar   []tracker.CalendarDay
	Recent     []model.Task

	TasksCursor int
	GoalsCursor int

	Capture CaptureState
	Confirm ConfirmState
	Palette CommandPaletteState

	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	captureInput textinput.Model
	commandInput textinput.Model
	todayBar     progress.Model
	helpModel    help.Model

	themeFromStore   bool
	lastReminder     string
	reminderInterval time.Duration
	pendingThreshold int
	rng              *rand.Rand
}

type SwitchScreenMsg struct {
	Screen Screen
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// ReminderCheckMsg is injected by the periodic cron job.
type ReminderCheckMsg struct{}

// DayRolloverMsg is injected by the midnight cron job.
type DayRolloverMsg struct{}

func NewModel(tr *tracker.Tracker, policy *reminder.Policy, kv storage.KV, clk clock.Clock) Model {
	m := Model{
		CurrentScreen: ScreenHome,
		tracker:       tr,
		policy:        policy,
		notifier:      reminder.NoopNotifier{},
		clk:           clk,
		kv:            kv,
		Permission:    reminder.PermissionDefault,
		ThemeName:     "dark",
		Capture: CaptureState{
			Kind:     CaptureTask,
			Selector: model.SelectToday,
		},
		Keys: GlobalKeyMap{
			Home:     "1",
			Tasks:    "2",
			Calendar: "3",
			Settings: "4",
			Help:     "?",
			Quit:     "q",
		},
		reminderInterval: 2 * time.Minute,
		pendingThreshold: reminder.DefaultPendingThreshold,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.initBubbleComponents()
	m.loadPersistedUIState()
	m.refreshViews()
	return m
}

func NewModelWithConfig(tr *tracker.Tracker, policy *reminder.Policy, kv storage.KV, clk clock.Clock, notifier reminder.Notifier, cfg config.Config) Model {
	m := NewModel(tr, policy, kv, clk)
	m.DesktopEnabled = cfg.DesktopNotifications
	if cfg.Theme != "" && !m.themeFromStore {
		m.ThemeName = views.ThemeByName(cfg.Theme).Name
	}
	if notifier != nil {
		m.notifier = notifier
	}
	if m.DesktopEnabled {
		m.Permission = reminder.PermissionGranted
	}
	m.reminderInterval = cfg.ReminderInterval
	m.pendingThreshold = cfg.PendingThreshold
	return m
}

func (m *Model) initBubbleComponents() {
	m.captureInput = textinput.New()
	m.captureInput.Prompt = "> "
	m.captureInput.CharLimit = model.MaxTaskTextLen
	m.captureInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.todayBar = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

// loadPersistedUIState restores the theme and the dismissed notification
// prompt from storage.
func (m *Model) loadPersistedUIState() {
	if raw, err := m.kv.Get(storage.KeyTheme); err == nil && raw != "" {
		m.ThemeName = views.ThemeByName(raw).Name
		m.themeFromStore = true
	}
	if raw, err := m.kv.Get(storage.KeyPushPromptDismissed); err == nil {
		m.PromptDismissed = raw == "true"
	}
}

// refreshViews rebuilds every cached read model from the tracker. Called
// after each mutation and each rollover.
func (m *Model) refreshViews() {
	today := m.clk.Today()
	groups, keys := m.tracker.GroupedActiveTasks()
	tomorrow := today.AddDays(1)

	rows := make([]TaskRow, 0)
	for _, key := range keys {
		label := string(key)
		switch key {
		case today:
			label = "today"
		case tomorrow:
			label = "tomorrow"
		}
		bucket := groups[key]
		// Buckets render newest first; relocated finalized items end up
		// at the bottom of their day.
		for i := len(bucket) - 1; i >= 0; i-- {
			rows = append(rows, TaskRow{Task: bucket[i], GroupLabel: label})
		}
	}
	m.Rows = rows
	m.GroupKeys = keys
	m.Goals = m.tracker.Goals()
	m.TodayStats = m.tracker.TodayStats()
	m.Calendar = m.tracker.CalendarSeries()
	m.Recent = m.tracker.RecentHomeItems(3)

	if m.TasksCursor >= len(m.Rows) {
		m.TasksCursor = len(m.Rows) - 1
	}
	if m.TasksCursor < 0 {
		m.TasksCursor = 0
	}
	if m.GoalsCursor >= len(m.Goals) {
		m.GoalsCursor = len(m.Goals) - 1
	}
	if m.GoalsCursor < 0 {
		m.GoalsCursor = 0
	}
}

func (m Model) currentTaskRow() (TaskRow, bool) {
	if len(m.Rows) == 0 || m.TasksCursor < 0 || m.TasksCursor >= len(m.Rows) {
		return TaskRow{}, false
	}
	return m.Rows[m.TasksCursor], true
}

func (m Model) currentGoal() (model.Goal, bool) {
	if len(m.Goals) == 0 || m.GoalsCursor < 0 || m.GoalsCursor >= len(m.Goals) {
		return model.Goal{}, false
	}
	return m.Goals[m.GoalsCursor], true
}

// checkChangeReminder runs the change trigger after a mutation and
// delivers at most one nudge.
func (m *Model) checkChangeReminder() {
	pending := m.tracker.PendingTodayCount()
	if m.policy.ShouldRemindOnChange(m.Permission, pending) {
		m.deliverReminder(pending)
	}
}
