package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet reports whether the flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliased flags was given.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an environment key (without EnvPrefix) to the flags it
// stands in for.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"OP", []string{"op"}, func(c *AppConfig, v string) { c.Op = strings.ToLower(v) }},
	{"A", []string{"a"}, func(c *AppConfig, v string) { c.A = v }},
	{"B", []string{"b"}, func(c *AppConfig, v string) { c.B = v }},
	{"BACKEND", []string{"backend"}, func(c *AppConfig, v string) { c.Backend = v }},
	{"SHIFT", []string{"shift"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 0); err == nil {
			c.Shift = uint(parsed)
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"WIDTH", []string{"width"}, intOverride(func(c *AppConfig) *int { return &c.Width })},
	{"WORDS", []string{"words"}, intOverride(func(c *AppConfig) *int { return &c.Words })},
	{"BENCH", []string{"bench"}, intOverride(func(c *AppConfig) *int { return &c.Bench })},
	{"WORKERS", []string{"workers"}, intOverride(func(c *AppConfig) *int { return &c.Workers })},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"verbose", "v"}, boolOverride(func(c *AppConfig) *bool { return &c.Verbose })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
	{"METRICS", []string{"metrics"}, boolOverride(func(c *AppConfig) *bool { return &c.Metrics })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively, and
// returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides copies environment values into config for every flag
// that was not set on the command line. Invalid values are ignored.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
