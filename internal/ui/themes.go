package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes, one per role.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
	// Accent and Border color the lipgloss boxes.
	Accent lipgloss.TerminalColor
	Border lipgloss.TerminalColor
}

var (
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Accent:    lipgloss.Color("39"),
		Border:    lipgloss.Color("245"),
	}

	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Accent:    lipgloss.Color("27"),
		Border:    lipgloss.Color("240"),
	}

	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{
		Name:   "none",
		Accent: lipgloss.NoColor{},
		Border: lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Unknown
// names select the dark theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme picks the theme from the -no-color flag and the NO_COLOR
// environment variable (https://no-color.org/).
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// The Color functions return the escape sequences of the current theme.
// They return empty strings under NoColorTheme.

// ColorReset returns the reset sequence.
func ColorReset() string     { return GetCurrentTheme().Reset }
// ColorRed returns the error color.
func ColorRed() string       { return GetCurrentTheme().Error }
// ColorGreen returns the success color.
func ColorGreen() string     { return GetCurrentTheme().Success }
// ColorYellow returns the warning color.
func ColorYellow() string    { return GetCurrentTheme().Warning }
// ColorBlue returns the primary color.
func ColorBlue() string      { return GetCurrentTheme().Primary }
// ColorMagenta returns the info color.
func ColorMagenta() string   { return GetCurrentTheme().Info }
// ColorGrey returns the secondary color.
func ColorGrey() string      { return GetCurrentTheme().Secondary }
// ColorBold returns the bold sequence.
func ColorBold() string      { return GetCurrentTheme().Bold }
// ColorUnderline returns the underline sequence.
func ColorUnderline() string { return GetCurrentTheme().Underline }
