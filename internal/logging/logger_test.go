package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output should contain %q, got: %s", w, output)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	divErr := errors.New("division by zero")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("op", "mul"), "op", "mul"},
		{"Int", Int("words", 4), "words", 4},
		{"Uint64", Uint64("acquired", 18446744073709551615), "acquired", uint64(18446744073709551615)},
		{"Float64", Float64("seconds", 0.25), "seconds", 0.25},
		{"Err", Err(divErr), "error", divErr},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("got %+v, want {%s %v}", tt.field, tt.key, tt.value)
			}
		})
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "evaluator").Info("evaluation finished", String("backend", "kernel"))
	assertContains(t, buf.String(), `"component":"evaluator"`, "evaluation finished", `"backend":"kernel"`, `"level":"info"`)
}

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestConsoleLoggerLevels(t *testing.T) {
	t.Parallel()
	var quiet, verbose bytes.Buffer
	NewConsoleLogger(&quiet, false, true).Debug("hidden")
	NewConsoleLogger(&verbose, true, true).Debug("shown", Int("words", 8))
	if quiet.Len() != 0 {
		t.Errorf("debug entry written without verbose: %s", quiet.String())
	}
	assertContains(t, verbose.String(), "shown", "words=8")
}

func TestZerologAdapterError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		fields []Field
		want   []string
	}{
		{"with error", errors.New("remainder span too short"), nil, []string{"quo failed", "remainder span too short"}},
		{"nil error", nil, nil, []string{"quo failed", `"level":"error"`}},
		{"with fields", errors.New("timeout"), []Field{String("backend", "gmp"), Int("words", 3)}, []string{"timeout", "gmp", `"words":3`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, "test").Error("quo failed", tt.err, tt.fields...)
			assertContains(t, buf.String(), tt.want...)
		})
	}
}

func TestZerologAdapterDebugAndPrint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
	logger.Debug("scratch acquired", Int("words", 64))
	logger.Printf("%d iterations", 1000)
	logger.Println("bench", "done")
	assertContains(t, buf.String(), "scratch acquired", `"level":"debug"`, "1000 iterations", "bench done")
}

func TestApplyFieldTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"string", Field{Key: "op", Value: "add"}, `"op":"add"`},
		{"int", Field{Key: "n", Value: 42}, `"n":42`},
		{"int64", Field{Key: "n", Value: int64(-7)}, `"n":-7`},
		{"uint64", Field{Key: "n", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "x", Value: 3.5}, `"x":3.5`},
		{"bool", Field{Key: "ok", Value: true}, `"ok":true`},
		{"error", Field{Key: "cause", Value: errors.New("oops")}, `"cause":"oops"`},
		{"struct", Field{Key: "win", Value: struct{ Words int }{Words: 4}}, `"Words":4`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("entry", tt.field)
			assertContains(t, buf.String(), tt.want)
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))
	adapter.Info("evaluating", String("op", "div"))
	adapter.Debug("aligned divisor", Int("shift", 12))
	adapter.Error("evaluation failed", errors.New("boom"), String("backend", "uint256"))
	adapter.Printf("value is %d", 123)
	adapter.Println("a", "b")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"[INFO] evaluating op=div",
		"[DEBUG] aligned divisor shift=12",
		"[ERROR] evaluation failed: boom backend=uint256",
		"value is 123",
		"a b",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
