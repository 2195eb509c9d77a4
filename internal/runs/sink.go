// SPDX-License-Identifier: MPL-2.0

package runs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/invowk/textkit/internal/lines"
)

// DefaultCountWidth is the minimum field width of the count prefix.
const DefaultCountWidth = 4

const (
	// SelectAll passes every run.
	SelectAll Selection = iota
	// SelectRepeated passes only runs with more than one member.
	SelectRepeated
	// SelectUnique passes only runs with exactly one member.
	SelectUnique
)

type (
	// Writer is a Sink that prints each run once, optionally prefixed by its
	// right-aligned count.
	Writer struct {
		w          io.Writer
		showCount  bool
		countWidth int
	}

	// Selection chooses which runs a Filter forwards.
	Selection int

	// Filter forwards runs matching its Selection to the next Sink.
	Filter struct {
		Next   Sink
		Select Selection
	}
)

// NewWriter creates a Writer. A countWidth < 1 falls back to DefaultCountWidth.
func NewWriter(w io.Writer, showCount bool, countWidth int) *Writer {
	if countWidth < 1 {
		countWidth = DefaultCountWidth
	}
	return &Writer{w: w, showCount: showCount, countWidth: countWidth}
}

// Emit writes the run's line, terminator included.
func (w *Writer) Emit(run Run) error {
	if w.showCount {
		if _, err := fmt.Fprintf(w.w, "%*d ", w.countWidth, run.Count); err != nil {
			return err
		}
	}
	_, err := w.w.Write(run.Line)
	return err
}

// Emit forwards run to Next when it matches the selection.
func (f *Filter) Emit(run Run) error {
	switch f.Select {
	case SelectRepeated:
		if run.Count < 2 {
			return nil
		}
	case SelectUnique:
		if run.Count != 1 {
			return nil
		}
	}
	return f.Next.Emit(run)
}

// FoldCase compares lines ignoring Unicode case, terminators included.
func FoldCase(a, b lines.Line) bool {
	return bytes.EqualFold(a, b)
}
