// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/textkit/internal/config"
	"github.com/invowk/textkit/internal/coreutils"
	"github.com/invowk/textkit/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra handler receives an App and runs tools through it.
	App struct {
		Config ConfigProvider

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
		dir    string

		// Per-invocation state, filled by prepare.
		verbose    bool
		configPath string
		cfg        *config.Config
		cfgPath    string
		logger     *log.Logger
		styled     bool
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Dir resolves relative operands and the ./config.cue fallback.
		// Empty means the process working directory.
		Dir string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		dir:    deps.Dir,
		cfg:    config.DefaultConfig(),
		logger: newLogger(deps.Stderr, config.LogLevelWarn, false),
	}
}

// prepare loads configuration and derives the logger and styling decision.
// Commands annotated with skipConfigAnnotation run on defaults so they keep
// working while the config file is broken.
func (a *App) prepare(cmd *cobra.Command) error {
	if _, skip := cmd.Annotations[skipConfigAnnotation]; !skip {
		loaded, err := a.Config.Load(cmd.Context(), config.LoadOptions{
			ConfigFilePath: a.configPath,
			BaseDir:        a.dir,
		})
		if err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		a.cfg = loaded.Config
		a.cfgPath = loaded.Path
	}

	a.styled = a.shouldStyle(a.cfg.Color)
	a.logger = newLogger(a.stderr, a.cfg.LogLevel, a.verbose)
	a.logger.Debug("configuration loaded", "path", a.cfgPath, "command", cmd.CommandPath())
	return nil
}

// newLogger builds the diagnostic logger. Verbose mode forces debug level.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
}

// shouldStyle resolves the color mode; auto styles only a terminal stdout.
func (a *App) shouldStyle(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := a.stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// runTool executes a parsed tool against the App's streams and maps the
// outcome onto an exit code. Tool diagnostics are printed here so the final
// error handler stays quiet for them.
func (a *App) runTool(cmd *cobra.Command, tool coreutils.Tool, operands []string) error {
	hc := &coreutils.HandlerContext{
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
		Dir:    a.dir,
		Logger: a.logger.WithPrefix(config.AppName + " " + tool.Name()),
	}
	return a.toolExit(tool.Name(), coreutils.Execute(cmd.Context(), tool, hc, operands))
}

// toolExit classifies a tool error:
//   - broken pipe: the reader went away, exit quietly with 0
//   - partial failure: already reported per operand, exit 1
//   - invalid argument: reported as "tool: message", exit 2
//   - output or other failures: reported, exit 1
//
// In verbose mode the one-line diagnostic is followed by the tool's hints and
// the catalogued explanation.
func (a *App) toolExit(name string, err error) error {
	if err == nil || coreutils.IsBrokenPipe(err) {
		return nil
	}

	ae := toolIssue(name, err)
	code := ExitFailure
	switch {
	case errors.Is(err, coreutils.ErrPartialFailure):
		a.logger.Debug("partial failure", "err", err)
	case errors.Is(err, coreutils.ErrInvalidArgument):
		fmt.Fprintln(a.stderr, err)
		code = ExitUsage
	default:
		fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
	}

	if a.verbose {
		fmt.Fprint(a.stderr, ae.Hints())
		a.explainTo(a.stderr, ae.Issue)
	}
	return &ExitError{Code: code}
}

// renderError prints errors that reached the root command unreported.
func (a *App) renderError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, a.paint(ErrorStyle, "Error:")+" "+formatErrorForDisplay(err, a.verbose))

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		a.explainTo(w, ae.Issue)
	}
}

// explainTo renders the catalogued guidance for id to w in verbose mode.
// Errors without a catalogue entry render nothing.
func (a *App) explainTo(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if !a.verbose || entry == nil {
		return
	}
	rendered, err := entry.Render(a.glamourStyle())
	if err != nil {
		a.logger.Debug("rendering issue failed", "id", id, "err", err)
		return
	}
	fmt.Fprint(w, rendered)
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors carry their suggestions; verbose mode adds the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
