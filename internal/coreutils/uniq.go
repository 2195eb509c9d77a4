// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/invowk/textkit/internal/lines"
	"github.com/invowk/textkit/internal/runs"
)

// Uniq collapses adjacent identical lines of one input operand, writing to
// standard output or to an output operand.
type Uniq struct {
	// ShowCount prefixes each line with the size of its run.
	ShowCount bool
	// Repeated prints only runs with more than one line.
	Repeated bool
	// Unique prints only runs of exactly one line.
	Unique bool
	// IgnoreCase compares lines case-insensitively.
	IgnoreCase bool
	// CountWidth is the count column width (runs.DefaultCountWidth when < 1).
	CountWidth int
}

// Name returns the command name.
func (u *Uniq) Name() string {
	return "uniq"
}

// Validate accepts every flag combination; -d with -u simply prints nothing.
func (u *Uniq) Validate() error {
	return nil
}

// Run executes the uniq command. operands is [IN_FILE [OUT_FILE]]; IN_FILE
// defaults to "-". The output file is only created once the input opened.
func (u *Uniq) Run(ctx context.Context, hc *HandlerContext, operands []string) error {
	if len(operands) > 2 {
		return &InvalidArgumentError{Tool: u.Name(), Value: operands[2], Reason: "extra operand"}
	}

	input := []string{lines.StdinName}
	if len(operands) > 0 {
		input = operands[:1]
	}

	return ProcessFilesOrStdin(ctx, hc, u.Name(), input, nil,
		func(in *lines.Input, _, _ int) error {
			if len(operands) < 2 {
				return hc.buffered(func(w *bufio.Writer) error {
					return u.collapse(hc, w, in)
				})
			}
			return u.collapseToFile(hc, in, operands[1])
		})
}

// collapseToFile creates (or truncates) name and writes the runs into it.
// Runs completed before a read failure still reach the file.
func (u *Uniq) collapseToFile(hc *HandlerContext, src lines.Source, name string) (err error) {
	path := name
	if !filepath.IsAbs(path) && hc.Dir != "" {
		path = filepath.Join(hc.Dir, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return outputErr(fmt.Errorf("%s: %s", name, lines.Reason(err)))
	}

	w := bufio.NewWriter(f)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil && err == nil {
			err = outputErr(flushErr)
		}
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = outputErr(closeErr)
		}
	}()

	return u.collapse(hc, w, src)
}

// collapse feeds src through the collapser into w. Write failures come back
// as OutputError; read failures are returned unchanged.
func (u *Uniq) collapse(hc *HandlerContext, w io.Writer, src lines.Source) error {
	var sink runs.Sink = runs.NewWriter(w, u.ShowCount, u.CountWidth)
	switch {
	case u.Repeated && u.Unique:
		sink = runs.SinkFunc(func(runs.Run) error { return nil })
	case u.Repeated:
		sink = &runs.Filter{Next: sink, Select: runs.SelectRepeated}
	case u.Unique:
		sink = &runs.Filter{Next: sink, Select: runs.SelectUnique}
	}

	next := sink
	guarded := runs.SinkFunc(func(r runs.Run) error {
		return outputErr(next.Emit(r))
	})

	var opts []runs.Option
	if u.IgnoreCase {
		opts = append(opts, runs.WithEqual(runs.FoldCase))
	}

	read, emitted, err := runs.CollapseStats(src, guarded, opts...)
	hc.log().Debug("collapsed input", "lines", read, "runs", emitted)
	return err
}
