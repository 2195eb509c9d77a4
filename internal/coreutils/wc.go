// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"

	"github.com/invowk/textkit/internal/lines"
	"github.com/invowk/textkit/internal/tally"
)

// Wc counts lines, words, bytes or characters of each operand.
type Wc struct {
	// Selection picks the counts to print; the zero value means lines, words
	// and bytes.
	Selection tally.Selection
	// FieldWidth is the column width of each count (tally.DefaultFieldWidth when < 1).
	FieldWidth int
}

// Name returns the command name.
func (c *Wc) Name() string {
	return "wc"
}

// Validate rejects selecting bytes together with characters.
func (c *Wc) Validate() error {
	if err := c.Selection.Validate(); err != nil {
		return &InvalidArgumentError{Tool: c.Name(), Flag: "chars", Reason: err.Error()}
	}
	return nil
}

// Run executes the wc command. Counts are printed as each operand finishes; a
// "total" line follows when more than one operand was given. Operands that
// failed are reported and left out of the total.
func (c *Wc) Run(ctx context.Context, hc *HandlerContext, operands []string) error {
	sel := c.Selection.Normalize()
	var total tally.Counts

	return hc.buffered(func(w *bufio.Writer) error {
		err := ProcessFilesOrStdin(ctx, hc, c.Name(), operands, w,
			func(in *lines.Input, _, _ int) error {
				counts, err := tally.Count(in)
				if err != nil {
					return err
				}
				total = total.Add(counts)
				hc.log().Debug("counted operand", "name", in.Name, "lines", counts.Lines, "bytes", counts.Bytes)
				return outputErr(tally.Render(w, counts, sel, in.Name, c.FieldWidth))
			})

		if len(operands) > 1 && (err == nil || errors.Is(err, ErrPartialFailure)) {
			if renderErr := tally.Render(w, total, sel, "total", c.FieldWidth); renderErr != nil {
				return outputErr(renderErr)
			}
		}
		return err
	})
}
