// Package ui renders run results and listings for the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	LightForeground = lipgloss.Color("#0f0f23")
	LightPrimary    = lipgloss.Color("#00862b")
	LightMuted      = lipgloss.Color("#6b6b80")

	DarkForeground = lipgloss.Color("#cccccc")
	DarkPrimary    = lipgloss.Color("#00cc00")
	DarkMuted      = lipgloss.Color("#666666")

	// Same in both modes.
	Destructive = lipgloss.Color("#e53935")
	Gold        = lipgloss.Color("#ffff66")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{Foreground: LightForeground, Primary: LightPrimary, Muted: LightMuted}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{Foreground: DarkForeground, Primary: DarkPrimary, Muted: DarkMuted, IsDark: true}
}

// DetectTheme picks a theme from COLORFGBG or AOC_DARK_MODE.
func DetectTheme() Theme {
	if os.Getenv("AOC_DARK_MODE") == "1" {
		return DarkTheme()
	}
	// "foreground;background"; low background indexes are dark.
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	return LightTheme()
}

// Styles holds the styles used by the tables.
type Styles struct {
	Theme Theme

	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Star    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(theme.Primary),
		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
		Star: lipgloss.NewStyle().
			Foreground(Gold),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
