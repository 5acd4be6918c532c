package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoquimMarques/DaySignal/internal/commands"
	"github.com/JoquimMarques/DaySignal/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			selector := model.SelectToday
			if a.Tomorrow {
				selector = model.SelectTomorrow
			}
			task, err := m.tracker.CreateTask(a.Text, selector)
			if err != nil {
				return commands.Result{}, err
			}
			if task == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "task text is empty or too long"}
			}
			m.refreshViews()
			m.checkChangeReminder()
			m.CurrentScreen = ScreenTasks
			return commands.Result{Message: fmt.Sprintf("added task: %s", task.Text)}, nil
		},
		Goal: func(g commands.GoalArgs) (commands.Result, error) {
			goal, err := m.tracker.CreateGoal(g.Text)
			if err != nil {
				return commands.Result{}, err
			}
			if goal == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "goal text is empty"}
			}
			m.refreshViews()
			m.CurrentScreen = ScreenHome
			return commands.Result{Message: fmt.Sprintf("added goal: %s", goal.Text)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Subject {
			case "calendar":
				m.CurrentScreen = ScreenCalendar
			case "goals":
				m.CurrentScreen = ScreenHome
			case "stats":
				m.CurrentScreen = ScreenHome
				if s.On != "" {
					date, err := model.ParseDate(s.On)
					if err != nil {
						return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("bad date: %s", s.On)}
					}
					stats := m.tracker.DailyStats(date)
					return commands.Result{Message: fmt.Sprintf("%s: %d/%d done (%d%%)", date, stats.Completed, stats.Total, stats.Percent)}, nil
				}
			default:
				m.CurrentScreen = ScreenTasks
			}
			return commands.Result{Message: "show " + s.Subject}, nil
		},
		Reset: func(commands.ResetArgs) (commands.Result, error) {
			m.Confirm = ConfirmState{
				Active:   true,
				Question: "clear every task?",
				action:   confirmResetTasks,
			}
			return commands.Result{Message: "confirm the reset"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
