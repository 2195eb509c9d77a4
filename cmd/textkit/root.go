// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for textkit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// skipConfigAnnotation marks commands that must not load the config file.
const skipConfigAnnotation = "textkit.skip-config"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// toolNames are the subcommands textkit answers to when invoked through
	// a symlink of the same name.
	toolNames = []string{"cat", "find", "head", "uniq", "wc"}
)

// NewRootCommand builds the textkit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Classic text utilities in one binary",
		Long: TitleStyle.Render("textkit") + SubtitleStyle.Render(" - classic text utilities in one binary") + `

textkit bundles cat, find, head, uniq and wc. Each tool reads the files
named on the command line, or standard input when none (or "-") is given.
Unreadable files are reported and skipped; the exit status is 1 when any
file failed and 2 when the arguments were invalid.

Link the binary under a tool name to run that tool directly:
  ln -s textkit uniq

` + SubtitleStyle.Render("Examples:") + `
  textkit uniq -c sorted.txt      Count adjacent duplicate lines
  textkit wc -l *.go              Count lines per file, with a total
  textkit head -n 3 notes.txt     Print the first three lines
  textkit manual uniq             Read the uniq manual page`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging and detailed error guidance")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/textkit/config.cue)")

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(
		newCatCommand(app),
		newFindCommand(app),
		newHeadCommand(app),
		newUniqCommand(app),
		newWcCommand(app),
		newConfigCommand(app),
		newManualCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs textkit with the process arguments and exits.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(dispatchArgs(os.Args))

	// fang overrides rootCmd.Version, so the version is passed as an option.
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.renderError(w, err)
		}),
	)
	os.Exit(exitCode(err))
}

// run executes the command tree without fang, printing unreported errors to
// the App's stderr. It returns the process exit code.
func run(ctx context.Context, app *App, argv []string) int {
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(dispatchArgs(argv))

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		app.renderError(app.stderr, err)
	}
	return exitCode(err)
}

// dispatchArgs turns argv into cobra arguments. When the binary is invoked
// under a tool name ("uniq -c"), that name becomes the subcommand.
func dispatchArgs(argv []string) []string {
	if len(argv) == 0 {
		return nil
	}

	// Both separators are stripped so Windows paths resolve on any host.
	name := argv[0]
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if slices.Contains(toolNames, name) {
		return append([]string{name}, argv[1:]...)
	}
	return argv[1:]
}

// exitCode maps a command error onto the process exit code. Errors that are
// not ExitErrors come from cobra's flag and argument validation.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
