package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Tests in this file swap the global theme and must not run in parallel.

func withTheme(t *testing.T, th Theme) {
	t.Helper()
	prev := GetCurrentTheme()
	SetCurrentTheme(th)
	t.Cleanup(func() { SetCurrentTheme(prev) })
}

func TestSetTheme(t *testing.T) {
	withTheme(t, DarkTheme)
	for name, want := range map[string]string{"light": "light", "none": "none", "dark": "dark", "bogus": "dark"} {
		SetTheme(name)
		if got := GetCurrentTheme().Name; got != want {
			t.Errorf("SetTheme(%q) -> %q, want %q", name, got, want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	withTheme(t, DarkTheme)
	InitTheme(true)
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("InitTheme(true) left colors enabled")
	}

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR was not honored")
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	withTheme(t, LightTheme)
	if ColorRed() != LightTheme.Error || ColorGreen() != LightTheme.Success || ColorUnderline() != "\033[4m" {
		t.Error("accessors do not read the active theme")
	}
}

func TestBoxAndHeaderPlain(t *testing.T) {
	withTheme(t, NoColorTheme)
	box := Box("value: 42", "words: [42 0]")
	lines := strings.Split(box, "\n")
	if len(lines) != 4 {
		t.Fatalf("Box rendered %d lines:\n%s", len(lines), box)
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.Contains(lines[1], "value: 42") {
		t.Errorf("unexpected box:\n%s", box)
	}

	h := Header("ultranum")
	if !strings.Contains(h, "ultranum") || !strings.Contains(h, strings.Repeat("─", 8)) {
		t.Errorf("unexpected header:\n%s", h)
	}
	if got := KeyValue("op", "mul", 8); lipgloss.Width(got) < 10 || !strings.HasSuffix(got, "mul") {
		t.Errorf("KeyValue = %q", got)
	}
}
