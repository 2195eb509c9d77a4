// SPDX-License-Identifier: MPL-2.0

// Package tally counts lines, words, bytes and characters in a line stream.
package tally

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/invowk/textkit/internal/lines"
)

// DefaultFieldWidth is the right-aligned width of each rendered count.
const DefaultFieldWidth = 8

// ErrConflictingSelection is returned when both bytes and chars are selected.
var ErrConflictingSelection = errors.New("byte and character counts are mutually exclusive")

type (
	// Counts holds the four measurements of a stream.
	Counts struct {
		Lines uint64
		Words uint64
		Bytes uint64
		Chars uint64
	}

	// Selection chooses which counts are rendered.
	Selection struct {
		Lines bool
		Words bool
		Bytes bool
		Chars bool
	}
)

// Count reads src to the end. Every line read counts as one line, including
// a final line without a terminator. Words are runs of non-whitespace;
// characters are UTF-8 decoded runes (each invalid byte counts as one).
func Count(src lines.Source) (Counts, error) {
	var c Counts
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return c, err
		}
		c.Lines++
		c.Bytes += uint64(len(line))
		c.Words += uint64(len(bytes.Fields(line)))
		c.Chars += uint64(utf8.RuneCount(line))
	}
}

// Add returns the field-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Lines: c.Lines + other.Lines,
		Words: c.Words + other.Words,
		Bytes: c.Bytes + other.Bytes,
		Chars: c.Chars + other.Chars,
	}
}

// Normalize applies the default selection (lines, words, bytes) when nothing
// is selected.
func (s Selection) Normalize() Selection {
	if !s.Lines && !s.Words && !s.Bytes && !s.Chars {
		return Selection{Lines: true, Words: true, Bytes: true}
	}
	return s
}

// Validate rejects selecting bytes and chars together.
func (s Selection) Validate() error {
	if s.Bytes && s.Chars {
		return ErrConflictingSelection
	}
	return nil
}

// Render writes the selected counts, each right-aligned in width columns,
// followed by " name" unless name is empty or "-".
func Render(w io.Writer, c Counts, s Selection, name string, width int) error {
	if width < 1 {
		width = DefaultFieldWidth
	}

	var buf bytes.Buffer
	if s.Lines {
		fmt.Fprintf(&buf, "%*d", width, c.Lines)
	}
	if s.Words {
		fmt.Fprintf(&buf, "%*d", width, c.Words)
	}
	if s.Chars {
		fmt.Fprintf(&buf, "%*d", width, c.Chars)
	} else if s.Bytes {
		fmt.Fprintf(&buf, "%*d", width, c.Bytes)
	}
	if name != "" && name != lines.StdinName {
		buf.WriteByte(' ')
		buf.WriteString(name)
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}
