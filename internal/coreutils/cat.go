// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/invowk/textkit/internal/lines"
)

// DefaultNumberWidth is the width of cat's line-number column.
const DefaultNumberWidth = 6

// Cat concatenates operands to standard output.
type Cat struct {
	// NumberLines prefixes every line with its number.
	NumberLines bool
	// NumberNonblank prefixes non-blank lines only; blank lines do not advance
	// the counter.
	NumberNonblank bool
	// NumberWidth is the minimum number column width (DefaultNumberWidth when < 1).
	NumberWidth int
}

// Name returns the command name.
func (c *Cat) Name() string {
	return "cat"
}

// Validate rejects combining both numbering modes.
func (c *Cat) Validate() error {
	if c.NumberLines && c.NumberNonblank {
		return &InvalidArgumentError{Tool: c.Name(), Flag: "number", Reason: "--number and --number-nonblank are mutually exclusive"}
	}
	return nil
}

// Run executes the cat command.
func (c *Cat) Run(ctx context.Context, hc *HandlerContext, operands []string) error {
	return hc.buffered(func(w *bufio.Writer) error {
		return ProcessFilesOrStdin(ctx, hc, c.Name(), operands, w,
			func(in *lines.Input, _, _ int) error {
				return c.copyLines(w, in)
			})
	})
}

// copyLines echoes src to w, numbering lines as configured. Numbering restarts
// for every operand.
func (c *Cat) copyLines(w io.Writer, src lines.Source) error {
	width := c.NumberWidth
	if width < 1 {
		width = DefaultNumberWidth
	}

	n := 0
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		number := c.NumberLines || (c.NumberNonblank && !line.IsBlank())
		if number {
			n++
			if _, err := fmt.Fprintf(w, "%*d\t", width, n); err != nil {
				return outputErr(err)
			}
		}
		if _, err := w.Write(line); err != nil {
			return outputErr(err)
		}
	}
}
