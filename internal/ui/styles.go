package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the overlay
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Online    lipgloss.Style
	Offline   lipgloss.Style
	Selected  lipgloss.Style
	Source    lipgloss.Style
	Score     lipgloss.Style
	Time      lipgloss.Style
	Filter    lipgloss.Style
	Status    lipgloss.Style
	ErrorLine lipgloss.Style
	Help      lipgloss.Style
	Overlay   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Online:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Offline: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Time:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ErrorLine: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:      lipgloss.NewStyle().Faint(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}
