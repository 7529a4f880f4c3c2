package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header renders title as a bold line in the accent color, underlined with
// a rule of the same width.
func Header(title string) string {
	t := GetCurrentTheme()
	style := lipgloss.NewStyle().Bold(t.Name != NoColorTheme.Name).Foreground(t.Accent)
	rule := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", lipgloss.Width(title)))
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(title), rule)
}

// Box frames lines in a rounded border with one column of padding.
func Box(lines ...string) string {
	t := GetCurrentTheme()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// KeyValue renders "key: value" with the key padded to width and dimmed.
func KeyValue(key, value string, width int) string {
	k := lipgloss.NewStyle().Width(width).Foreground(GetCurrentTheme().Border).Render(key + ":")
	return k + " " + value
}
