package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI. The names follow
// the structure of the carousel: wrapper, content, track, slides, controls
// and the page indicator row.
type Styles struct {
	Wrapper   lipgloss.Style
	Header    lipgloss.Style
	Content   lipgloss.Style
	Track     lipgloss.Style
	Slide     lipgloss.Style
	Title     lipgloss.Style
	Prev      lipgloss.Style
	Next      lipgloss.Style
	Nav       lipgloss.Style
	Dot       lipgloss.Style
	DotActive lipgloss.Style
	Status    lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Wrapper: lipgloss.NewStyle(),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Content: lipgloss.NewStyle(),
		Track:   lipgloss.NewStyle(),
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Prev: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1),
		Next: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1),
		Nav:       lipgloss.NewStyle(),
		Dot:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Playing:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
