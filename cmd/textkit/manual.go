// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/textkit/internal/manual"

	"github.com/spf13/cobra"
)

func newManualCommand(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:       "manual [TOPIC]",
		Aliases:   []string{"man"},
		Short:     "Read a tool's manual page",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: manual.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(app.stdout, app.paint(TitleStyle, "Manual topics"))
				for _, topic := range manual.Topics() {
					fmt.Fprintf(app.stdout, "  %s\n", app.paint(CmdStyle, topic))
				}
				return nil
			}

			var (
				out string
				err error
			)
			if raw {
				out, err = manual.Source(args[0])
			} else {
				out, err = manual.Render(args[0], app.glamourStyle())
			}
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")

	return cmd
}
