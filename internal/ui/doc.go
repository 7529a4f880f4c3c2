// Package ui holds the color themes and the lipgloss styles shared by the
// CLI presenter. Colors can be disabled with -no-color or the NO_COLOR
// environment variable.
package ui
