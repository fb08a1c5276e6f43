package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/monotimer/internal/models"
)

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	base       lipgloss.Style
	main       lipgloss.Style
	secondary  lipgloss.Style
	hint       lipgloss.Style
	failure    lipgloss.Style
	focus      lipgloss.Style
	shortBreak lipgloss.Style
	longBreak  lipgloss.Style
}

func newStyles(dark bool) styles {
	main := lipgloss.Color("#1a1a1a")
	hint := lipgloss.Color("#6c6c6c")

	if dark {
		main = lipgloss.Color("#f5f5f5")
		hint = lipgloss.Color("#8a8a8a")
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#ffffff"))

	return styles{
		base:       lipgloss.NewStyle().Padding(1, padding),
		main:       lipgloss.NewStyle().Bold(true).Foreground(main),
		secondary:  lipgloss.NewStyle().Foreground(main),
		hint:       lipgloss.NewStyle().Foreground(hint),
		failure:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		focus:      label.Background(lipgloss.Color("#2e8b57")),
		shortBreak: label.Background(lipgloss.Color("#1e90ff")),
		longBreak:  label.Background(lipgloss.Color("#8a2be2")),
	}
}

// session returns the label style for a session type.
func (s styles) session(t models.SessionType) lipgloss.Style {
	switch t {
	case models.ShortBreak:
		return s.shortBreak
	case models.LongBreak:
		return s.longBreak
	default:
		return s.focus
	}
}
