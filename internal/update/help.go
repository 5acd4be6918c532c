package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.screenBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return fmt.Sprintf("\nhelp:\n%s\n%s",
		strings.Join(plain, "\n"),
		m.helpModel.View(helpKeyMap{short: bindings, full: [][]key.Binding{bindings}}),
	)
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Home, Action: "home"},
		{Key: m.Keys.Tasks, Action: "tasks"},
		{Key: m.Keys.Calendar, Action: "calendar"},
		{Key: m.Keys.Settings, Action: "settings"},
		{Key: "a", Action: "add task"},
		{Key: "g", Action: "add goal"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	switch m.CurrentScreen {
	case ScreenHome:
		return []KeyBinding{
			{Key: "j/k", Action: "move goal cursor"},
			{Key: "enter/f", Action: "complete / fail goal"},
			{Key: "d", Action: "delete goal"},
		}
	case ScreenTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter/f", Action: "complete / fail task"},
			{Key: "u", Action: "move task up"},
			{Key: "x", Action: "archive task"},
		}
	case ScreenSettings:
		return []KeyBinding{
			{Key: "t", Action: "toggle theme"},
			{Key: "n", Action: "toggle notifications"},
			{Key: "p", Action: "reset notification prompt"},
			{Key: "r", Action: "clear all tasks"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.screenBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.screenBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
