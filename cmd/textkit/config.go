// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/invowk/textkit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `textkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textkit configuration",
		Long: `Manage textkit configuration.

Configuration is read from $XDG_CONFIG_HOME/textkit/config.cue (the platform
equivalent on macOS and Windows), then ./config.cue. TEXTKIT_* environment
variables override file values, e.g. TEXTKIT_HEAD_LINES=20.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showConfig(app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show the configuration file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.stdout, configFilePath(app))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create the default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE, TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Render(app.cfg, config.Format(format))
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			_, err = app.stdout.Write(data)
			return err
		},
	}
	dumpCmd.Flags().StringVarP(&format, "format", "f", string(config.FormatCUE), "output format: "+formatList())
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func formatList() string {
	formats := config.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// configFilePath is the file textkit reads: --config when given, else the
// file in the config directory.
func configFilePath(app *App) string {
	if app.configPath != "" {
		return app.configPath
	}
	return config.ConfigFilePath(config.ConfigDir())
}

func showConfig(app *App) {
	w := app.stdout
	cfg := app.cfg
	key := func(s string) string { return app.paint(CmdStyle, s) }
	value := func(s string) string { return app.paint(SuccessStyle, s) }

	fmt.Fprintln(w, app.paint(TitleStyle, "Current Configuration"))
	fmt.Fprintln(w)

	if app.cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", key("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", key("Config file"), app.paint(SubtitleStyle, "(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", key("log_level"), value(cfg.LogLevel.String()))
	fmt.Fprintf(w, "%s: %s\n", key("color"), value(cfg.Color.String()))

	sections := []struct {
		name, field string
		val         int
	}{
		{"cat", "number_width", cfg.Cat.NumberWidth},
		{"head", "lines", cfg.Head.Lines},
		{"uniq", "count_width", cfg.Uniq.CountWidth},
		{"wc", "field_width", cfg.Wc.FieldWidth},
	}
	for _, s := range sections {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", key(s.name))
		fmt.Fprintf(w, "  %s: %s\n", s.field, value(strconv.Itoa(s.val)))
	}
}

func initConfig(app *App) error {
	if app.configPath != "" {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("config init writes to %s; --config is not supported here", config.ConfigDir())}
	}

	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	if created {
		fmt.Fprintf(app.stdout, "%s %s\n", app.paint(SuccessStyle, "Created"), path)
	} else {
		fmt.Fprintf(app.stdout, "%s %s\n", app.paint(SubtitleStyle, "Already exists:"), path)
	}
	return nil
}
