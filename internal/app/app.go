// Package app wires configuration, evaluators and presentation into the
// ultranum command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/ultranum/internal/cli"
	"github.com/agbru/ultranum/internal/config"
	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/logging"
	"github.com/agbru/ultranum/internal/metrics"
	"github.com/agbru/ultranum/internal/orchestration"
	"github.com/agbru/ultranum/internal/ui"
)

// Application is one run of the ultranum command.
type Application struct {
	Config    config.AppConfig
	Registry  *orchestration.Registry
	ErrWriter io.Writer
	Logger    logging.Logger
	Recorder  *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the default evaluator registry.
func WithRegistry(r *orchestration.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger replaces the console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New parses args, whose first element is the program name, into an
// Application.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = orchestration.DefaultRegistry()
	}

	programName := "ultranum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, cfg.Verbose, cfg.NoColor)
	}
	if cfg.Metrics {
		app.Recorder = metrics.NewRecorder()
	}
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	if a.Config.Bench > 0 {
		code = a.runBench(ctx, out)
	} else {
		code = a.runEvaluate(ctx, out)
	}

	if a.Recorder != nil {
		fmt.Fprintln(out)
		if err := a.Recorder.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	return code
}

// runEvaluate evaluates the single request given on the command line with
// the selected backends.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{Quiet: a.Config.Quiet}
	req, err := orchestration.NewRequest(a.Config.Op, a.Config.A, a.Config.B, a.Config.Shift, a.Config.Width, a.Config.Words)
	if err != nil {
		fmt.Fprintln(a.ErrWriter, err)
		return apperrors.ExitErrorConfig
	}
	evaluators, err := a.Registry.Select(a.Config.Backend, req)
	if err != nil {
		fmt.Fprintln(a.ErrWriter, err)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(evaluators, out)
	}
	a.Logger.Debug("evaluating",
		logging.String("request", req.String()),
		logging.Int("backends", len(evaluators)))

	results := orchestration.ExecuteEvaluations(ctx, evaluators, req, a.Recorder)
	for _, r := range results {
		if r.Err != nil {
			a.Logger.Debug("backend failed", logging.String("backend", r.Name), logging.Err(r.Err))
		}
	}
	return orchestration.AnalyzeResults(results, req, presenter, out, a.Recorder)
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
