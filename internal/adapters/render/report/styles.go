package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	detail  lipgloss.Style
	section lipgloss.Style
	source  lipgloss.Style
	idle    lipgloss.Style
	busy    lipgloss.Style
	none    lipgloss.Style
	reason  lipgloss.Style
	warning lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		source:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		idle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		busy:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		none:    lipgloss.NewStyle().Faint(true),
		reason:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}
