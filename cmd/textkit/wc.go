// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textkit/internal/coreutils"
	"github.com/invowk/textkit/internal/tally"

	"github.com/spf13/cobra"
)

func newWcCommand(app *App) *cobra.Command {
	var sel tally.Selection

	cmd := &cobra.Command{
		Use:   "wc [FILE]...",
		Short: "Count lines, words, bytes and characters",
		Long: `Print line, word and byte counts for each FILE, and a total line when
more than one FILE is given. With no flags, -l -w -c is assumed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTool(cmd, &coreutils.Wc{
				Selection:  sel,
				FieldWidth: app.cfg.Wc.FieldWidth,
			}, args)
		},
	}

	cmd.Flags().BoolVarP(&sel.Lines, "lines", "l", false, "print the newline counts")
	cmd.Flags().BoolVarP(&sel.Words, "words", "w", false, "print the word counts")
	cmd.Flags().BoolVarP(&sel.Bytes, "bytes", "c", false, "print the byte counts")
	cmd.Flags().BoolVarP(&sel.Chars, "chars", "m", false, "print the character counts")
	cmd.MarkFlagsMutuallyExclusive("bytes", "chars")

	return cmd
}
