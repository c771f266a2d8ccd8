package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants that read better on a dark
// terminal background.
var DarkTheme bool

// Theme names accepted in the styleCode preference.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// SetTheme applies a styleCode preference. Unknown values keep the current
// theme.
func SetTheme(styleCode string) {
	switch styleCode {
	case ThemeDark:
		DarkTheme = true
	case ThemeLight:
		DarkTheme = false
	}
}

// DisableStyling disables all styling provided by pterm.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// Signed colours s green when value is zero or more and red otherwise.
func Signed(value float64, s string) string {
	if value < 0 {
		return Red(s)
	}

	return Green(s)
}
