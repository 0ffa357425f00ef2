package entities

import "fmt"

// Theme is the colour scheme of the rendered page
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme accepts "dark" or "light"
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q, expected dark or light", s)
	}
}

// Toggled returns the opposite theme
func (t Theme) Toggled() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Preferences are the per-user settings kept across sessions.
// The quantity engine never reads them.
type Preferences struct {
	Theme Theme
}

// DefaultPreferences starts in dark mode
func DefaultPreferences() Preferences {
	return Preferences{Theme: Dark}
}
