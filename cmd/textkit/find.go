// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textkit/internal/coreutils"

	"github.com/spf13/cobra"
)

func newFindCommand(app *App) *cobra.Command {
	opts := coreutils.FindOptions{MaxDepth: -1}

	cmd := &cobra.Command{
		Use:   "find [PATH]...",
		Short: "Walk directory trees and print matching entries",
		Long: `Walk each PATH (default ".") and print every entry that matches the
given filters. Within one filter kind any value may match; entries must
satisfy every kind given. Symbolic links are listed, never followed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := coreutils.NewFind(opts)
			if err != nil {
				return app.toolExit("find", err)
			}
			return app.runTool(cmd, f, args)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Names, "name", "n", nil, "base name matches REGEX (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.Globs, "glob", "g", nil, "base name matches shell PATTERN (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.Types, "type", "t", nil, "entry type: f, d or l (repeatable)")
	cmd.Flags().IntVar(&opts.MinDepth, "min-depth", 0, "skip entries shallower than N")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", -1, "descend at most N levels (-1 for unlimited)")

	return cmd
}
