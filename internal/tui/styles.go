package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Question lipgloss.Style
	Answered lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A29BFE")),
		Answered: lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72")),
	}
}
