// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/invowk/textkit/internal/lines"
)

// FileProcessor processes a single opened operand.
// Parameters:
//   - in: the opened operand (in.Name is the operand as given, "-" for stdin)
//   - index: 0-based position of the operand
//   - total: number of operands (1 when reading stdin implicitly)
type FileProcessor func(in *lines.Input, index, total int) error

// ProcessFilesOrStdin opens each operand in turn and invokes processor on it.
// An empty operand list processes standard input as "-".
//
// Failures are isolated per operand: an open failure or a processor error is
// reported to hc.Stderr as "tool: name: reason" and the next operand is
// processed. Output failures (OutputError) and context cancellation abort
// immediately. When out is non-nil it is flushed before each diagnostic so
// results and diagnostics keep their relative order.
//
// Example usage (head command):
//
//	return ProcessFilesOrStdin(ctx, hc, h.Name(), operands, w,
//	    func(in *lines.Input, index, total int) error {
//	        if total > 1 {
//	            if index > 0 {
//	                fmt.Fprintln(w)
//	            }
//	            fmt.Fprintf(w, "==> %s <==\n", in.Name)
//	        }
//	        return h.copyLines(w, in)
//	    })
func ProcessFilesOrStdin(
	ctx context.Context,
	hc *HandlerContext,
	tool string,
	operands []string,
	out *bufio.Writer,
	processor FileProcessor,
) error {
	if len(operands) == 0 {
		operands = []string{lines.StdinName}
	}

	r := &reporter{hc: hc, tool: tool, out: out}
	total := len(operands)
	for i, name := range operands {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", tool, err)
		}

		if err := processOperand(hc, name, func(in *lines.Input) error {
			return processor(in, i, total)
		}); err != nil {
			var oe *OutputError
			if errors.As(err, &oe) {
				return err
			}
			if rerr := r.report(name, err); rerr != nil {
				return rerr
			}
		}
	}

	return r.result()
}

// processOperand opens name and calls fn, aggregating the close error via
// named return.
func processOperand(hc *HandlerContext, name string, fn func(in *lines.Input) error) (err error) {
	in, err := lines.Open(name, hc.Stdin, hc.Dir)
	if err != nil {
		return err
	}
	hc.log().Debug("opened operand", "name", name)
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(in)
}

// reporter writes per-operand diagnostics and counts failures.
type reporter struct {
	hc     *HandlerContext
	tool   string
	out    *bufio.Writer
	failed int
}

// report writes "tool: name: reason". A failure to flush pending output is
// returned as an OutputError.
func (r *reporter) report(name string, err error) error {
	r.failed++
	if r.out != nil {
		if flushErr := r.out.Flush(); flushErr != nil {
			return outputErr(flushErr)
		}
	}

	var openErr *lines.OpenError
	if errors.As(err, &openErr) {
		fmt.Fprintf(r.hc.Stderr, "%s: %s\n", r.tool, openErr.Error())
	} else {
		fmt.Fprintf(r.hc.Stderr, "%s: %s: %s\n", r.tool, name, lines.Reason(err))
	}
	r.hc.log().Debug("operand failed", "tool", r.tool, "name", name, "error", err)
	return nil
}

// reportf writes a diagnostic that is not tied to an opened operand.
func (r *reporter) reportf(format string, args ...any) error {
	r.failed++
	if r.out != nil {
		if flushErr := r.out.Flush(); flushErr != nil {
			return outputErr(flushErr)
		}
	}
	fmt.Fprintf(r.hc.Stderr, "%s: "+format+"\n", append([]any{r.tool}, args...)...)
	return nil
}

// result returns a PartialFailureError when any operand failed.
func (r *reporter) result() error {
	if r.failed == 0 {
		return nil
	}
	return &PartialFailureError{Tool: r.tool, Failed: r.failed}
}
