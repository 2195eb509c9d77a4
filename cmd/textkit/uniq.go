// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textkit/internal/coreutils"

	"github.com/spf13/cobra"
)

func newUniqCommand(app *App) *cobra.Command {
	var u coreutils.Uniq

	cmd := &cobra.Command{
		Use:   "uniq [IN_FILE [OUT_FILE]]",
		Short: "Collapse adjacent duplicate lines",
		Long: `Collapse runs of adjacent identical lines from IN_FILE (default standard
input) into one, writing to OUT_FILE or standard output.

Only adjacent lines are compared; sort the input first to remove every
duplicate. Lines compare byte for byte, including their terminator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u.CountWidth = app.cfg.Uniq.CountWidth
			return app.runTool(cmd, &u, args)
		},
	}

	cmd.Flags().BoolVarP(&u.ShowCount, "count", "c", false, "prefix lines by the number of occurrences")
	cmd.Flags().BoolVarP(&u.Repeated, "repeated", "d", false, "only print duplicate lines, one for each run")
	cmd.Flags().BoolVarP(&u.Unique, "unique", "u", false, "only print lines that are not repeated")
	cmd.Flags().BoolVarP(&u.IgnoreCase, "ignore-case", "i", false, "ignore differences in case when comparing")

	return cmd
}
