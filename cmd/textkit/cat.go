// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textkit/internal/coreutils"

	"github.com/spf13/cobra"
)

func newCatCommand(app *App) *cobra.Command {
	var numberLines, numberNonblank bool

	cmd := &cobra.Command{
		Use:   "cat [FILE]...",
		Short: "Concatenate files to standard output",
		Long: `Concatenate files to standard output.

With no FILE, or when FILE is -, read standard input. Line numbers are
right-aligned in a column of cat.number_width characters (default 6).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTool(cmd, &coreutils.Cat{
				NumberLines:    numberLines,
				NumberNonblank: numberNonblank,
				NumberWidth:    app.cfg.Cat.NumberWidth,
			}, args)
		},
	}

	cmd.Flags().BoolVarP(&numberLines, "number", "n", false, "number all output lines")
	cmd.Flags().BoolVarP(&numberNonblank, "number-nonblank", "b", false, "number non-empty output lines")
	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")

	return cmd
}
