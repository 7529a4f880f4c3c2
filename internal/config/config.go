// Package config parses and validates the command-line configuration.
//
// Values are resolved in this order: command-line flags, then environment
// variables prefixed with EnvPrefix, then adaptive defaults, then the static
// defaults declared on the flag set.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/kernel"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "ULTRANUM_"

// Operations lists the operations the evaluators understand.
var Operations = []string{"add", "sub", "mul", "div", "cmp", "lsh", "rsh", "neg"}

// Widths lists the supported word widths in bits.
var Widths = []int{8, 16, 32, 64}

// AppConfig is the resolved application configuration.
type AppConfig struct {
	// Op is the operation to evaluate.
	Op string
	// A and B are the operands in any base accepted by big.Int.SetString
	// with base 0 (decimal, 0x, 0o, 0b).
	A, B string
	// Shift is the bit count for lsh and rsh.
	Shift uint
	// Width is the word width in bits; 0 selects the native width.
	Width int
	// Words is the number of words in the fixed window.
	Words int
	// Backend selects the evaluator, or "all" to compare every backend.
	Backend string
	Timeout time.Duration
	// Bench is the number of randomized iterations to run; 0 evaluates the
	// single operation given by Op, A and B.
	Bench int
	Seed  int64
	// Workers bounds the benchmark concurrency; 0 selects one per CPU.
	Workers int
	Quiet   bool
	Verbose bool
	NoColor bool
	Metrics bool
	Version bool
}

// ParseConfig parses args into an AppConfig. backends lists the evaluator
// names the -backend flag accepts in addition to "all".
//
// Parameters:
//   - programName: Name shown in the usage message.
//   - args: Command-line arguments without the program name.
//   - errWriter: Destination of usage and parse errors.
//   - backends: Accepted backend names.
func ParseConfig(programName string, args []string, errWriter io.Writer, backends []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Op, "op", "add", fmt.Sprintf("operation: %s", strings.Join(Operations, ", ")))
	fs.StringVar(&cfg.A, "a", "0", "first operand")
	fs.StringVar(&cfg.B, "b", "0", "second operand")
	fs.UintVar(&cfg.Shift, "shift", 0, "bit count for lsh and rsh")
	fs.IntVar(&cfg.Width, "width", 0, "word width in bits (8, 16, 32, 64; 0 = native)")
	fs.IntVar(&cfg.Words, "words", 4, "number of words in the fixed window")
	fs.StringVar(&cfg.Backend, "backend", "all", fmt.Sprintf("evaluator: all, %s", strings.Join(backends, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", time.Minute, "maximum time for the whole run")
	fs.IntVar(&cfg.Bench, "bench", 0, "run this many randomized operations instead of a single evaluation")
	fs.Int64Var(&cfg.Seed, "seed", 1, "random seed for -bench")
	fs.IntVar(&cfg.Workers, "workers", 0, "benchmark concurrency (0 = one per CPU)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print Prometheus metrics after the run")
	fs.BoolVar(&cfg.Version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveDefaults(cfg)
	if cfg.Version {
		return cfg, nil
	}
	if err := cfg.Validate(backends); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns a ConfigError describing
// the first problem found.
func (c AppConfig) Validate(backends []string) error {
	switch {
	case !slices.Contains(Operations, c.Op):
		return apperrors.NewConfigError("unknown operation %q (want one of %s)", c.Op, strings.Join(Operations, ", "))
	case !slices.Contains(Widths, c.Width):
		return apperrors.NewConfigError("unsupported word width %d (want 8, 16, 32 or 64)", c.Width)
	case c.Words < 1:
		return apperrors.NewConfigError("word count must be positive, got %d", c.Words)
	case c.Words > kernel.MaxWords:
		return apperrors.NewConfigError("word count %d exceeds the limit of %d", c.Words, kernel.MaxWords)
	case c.Backend != "all" && !slices.Contains(backends, c.Backend):
		return apperrors.NewConfigError("unknown backend %q", c.Backend)
	case c.Timeout <= 0:
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	case c.Bench < 0:
		return apperrors.NewConfigError("bench iterations must not be negative, got %d", c.Bench)
	case c.Workers < 1:
		return apperrors.NewConfigError("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// WindowBits returns the width of the fixed window in bits.
func (c AppConfig) WindowBits() int { return c.Width * c.Words }
