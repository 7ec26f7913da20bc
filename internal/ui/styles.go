package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Status       lipgloss.Style
	StatusKey    lipgloss.Style
	StatusValue  lipgloss.Style
	StatusError  lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	LogTitle     lipgloss.Style
	LogTime      lipgloss.Style
	LogEvent     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		LogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		LogTime:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		LogEvent: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}
