// Package ui holds terminal colour and table helpers
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/monotimer/internal/models"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// SessionColor renders a in the colour assigned to the session type.
func SessionColor(t models.SessionType, a any) string {
	switch t {
	case models.ShortBreak:
		return Cyan(a)
	case models.LongBreak:
		return Magenta(a)
	default:
		return Green(a)
	}
}

// DisableStyling turns off all colour output.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
}
