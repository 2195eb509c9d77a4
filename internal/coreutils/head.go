// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/invowk/textkit/internal/lines"
)

// DefaultHeadLines is the number of lines head prints when neither -n nor -c
// is given.
const DefaultHeadLines = 10

// Head prints the first lines (or bytes) of each operand.
type Head struct {
	// Lines is the number of lines to print. Ignored when Bytes > 0.
	Lines int
	// Bytes, when positive, switches to byte mode.
	Bytes int
}

// Name returns the command name.
func (h *Head) Name() string {
	return "head"
}

// Validate rejects non-positive counts.
func (h *Head) Validate() error {
	if h.Bytes < 0 {
		return &InvalidArgumentError{Tool: h.Name(), Flag: "bytes", Value: strconv.Itoa(h.Bytes), Reason: "illegal byte count"}
	}
	if h.Bytes == 0 && h.Lines < 1 {
		return &InvalidArgumentError{Tool: h.Name(), Flag: "lines", Value: strconv.Itoa(h.Lines), Reason: "illegal line count"}
	}
	return nil
}

// Run executes the head command. With several operands each section is
// preceded by a "==> name <==" header and separated by a blank line.
func (h *Head) Run(ctx context.Context, hc *HandlerContext, operands []string) error {
	return hc.buffered(func(w *bufio.Writer) error {
		return ProcessFilesOrStdin(ctx, hc, h.Name(), operands, w,
			func(in *lines.Input, index, total int) error {
				if total > 1 {
					if index > 0 {
						if _, err := fmt.Fprintln(w); err != nil {
							return outputErr(err)
						}
					}
					if _, err := fmt.Fprintf(w, "==> %s <==\n", in.Name); err != nil {
						return outputErr(err)
					}
				}
				if h.Bytes > 0 {
					return h.copyBytes(w, in)
				}
				return h.copyLines(w, in)
			})
	})
}

// copyLines outputs the first h.Lines lines, terminators included.
func (h *Head) copyLines(w io.Writer, src lines.Source) error {
	for range h.Lines {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return outputErr(err)
		}
	}
	return nil
}

// copyBytes outputs at most h.Bytes raw bytes. Multi-byte characters may be
// cut in half, matching POSIX head -c.
func (h *Head) copyBytes(w io.Writer, r io.Reader) error {
	buf := make([]byte, 32*1024)
	remaining := int64(h.Bytes)
	for remaining > 0 {
		chunk := buf
		if int64(len(chunk)) > remaining {
			chunk = chunk[:remaining]
		}
		n, err := r.Read(chunk)
		if n > 0 {
			if _, werr := w.Write(chunk[:n]); werr != nil {
				return outputErr(werr)
			}
			remaining -= int64(n)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ParsePositiveInt parses a count option value. kind names the count in the
// error ("line", "byte"), e.g. "head: illegal line count -- foo".
func ParsePositiveInt(tool, flag, kind, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, &InvalidArgumentError{Tool: tool, Flag: flag, Value: value, Reason: "illegal " + kind + " count"}
	}
	return n, nil
}
