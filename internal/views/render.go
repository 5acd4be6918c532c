// Package views renders application state into terminal panels. Everything
// here is pure string assembly over prepared data; no view touches the
// tracker directly.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	Footer       string
	Notification string
}

// Theme selects the palette applied to the app frame.
type Theme struct {
	Name    string
	header  lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
	panel   lipgloss.Style
	footer  lipgloss.Style
}

var (
	DarkTheme = Theme{
		Name:    "dark",
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	LightTheme = Theme{
		Name:    "light",
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
)

// ThemeByName falls back to dark for unknown names.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, "light") {
		return LightTheme
	}
	return DarkTheme
}

func RenderApp(theme Theme, data AppData) string {
	left := theme.panel.Width(58).Render(data.LeftPane)
	right := theme.panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := theme.status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = theme.errText.Render(data.StatusLine)
	}

	lines := []string{
		theme.header.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, theme.panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, theme.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md, themeName string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if strings.EqualFold(themeName, "light") {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
