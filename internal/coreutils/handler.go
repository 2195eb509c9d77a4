// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type (
	// Tool is one textkit utility with its options already parsed.
	Tool interface {
		// Name returns the utility name used in diagnostics (e.g., "uniq").
		Name() string

		// Validate rejects invalid option values. It performs no I/O.
		Validate() error

		// Run processes operands. An empty operand list means standard input.
		Run(ctx context.Context, hc *HandlerContext, operands []string) error
	}

	// HandlerContext carries the streams and environment a Tool runs against.
	// Tests inject buffers; the CLI wires the process streams.
	HandlerContext struct {
		// Stdin is the input stream selected by the "-" operand.
		Stdin io.Reader
		// Stdout receives results.
		Stdout io.Writer
		// Stderr receives per-operand diagnostics.
		Stderr io.Writer
		// Dir resolves relative operands. Empty means the process working directory.
		Dir string
		// Logger receives debug events. Nil disables logging.
		Logger *log.Logger
	}
)

// Execute validates t and runs it. Validation errors are returned before any
// operand is touched.
func Execute(ctx context.Context, t Tool, hc *HandlerContext, operands []string) error {
	if err := t.Validate(); err != nil {
		return err
	}
	hc.log().Debug("running tool", "tool", t.Name(), "operands", len(operands))
	return t.Run(ctx, hc, operands)
}

// log returns the configured logger or a discarding one.
func (hc *HandlerContext) log() *log.Logger {
	if hc.Logger == nil {
		return log.New(io.Discard)
	}
	return hc.Logger
}

// buffered runs fn against a buffered view of Stdout and flushes it, returning
// the first error. Uses a named return so a flush failure is not lost.
func (hc *HandlerContext) buffered(fn func(w *bufio.Writer) error) (err error) {
	w := bufio.NewWriter(hc.Stdout)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil && err == nil {
			err = outputErr(flushErr)
		}
	}()
	return fn(w)
}
