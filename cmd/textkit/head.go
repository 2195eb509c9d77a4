// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textkit/internal/coreutils"

	"github.com/spf13/cobra"
)

func newHeadCommand(app *App) *cobra.Command {
	// Counts are parsed as strings so "-n foo" gets head's own diagnostic.
	var lines, bytes string

	cmd := &cobra.Command{
		Use:   "head [FILE]...",
		Short: "Print the first part of files",
		Long: `Print the first lines (default head.lines, 10) or bytes of each FILE.

With more than one FILE, each is preceded by a "==> name <==" header.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &coreutils.Head{Lines: app.cfg.Head.Lines}

			var err error
			if cmd.Flags().Changed("lines") {
				if h.Lines, err = coreutils.ParsePositiveInt("head", "lines", "line", lines); err != nil {
					return app.toolExit(h.Name(), err)
				}
			}
			if cmd.Flags().Changed("bytes") {
				if h.Bytes, err = coreutils.ParsePositiveInt("head", "bytes", "byte", bytes); err != nil {
					return app.toolExit(h.Name(), err)
				}
			}

			return app.runTool(cmd, h, args)
		},
	}

	cmd.Flags().StringVarP(&lines, "lines", "n", "", "print the first COUNT lines")
	cmd.Flags().StringVarP(&bytes, "bytes", "c", "", "print the first BYTES bytes")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")

	return cmd
}
