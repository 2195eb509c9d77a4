// SPDX-License-Identifier: MPL-2.0

package lines

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

type (
	// Line is one line of input including its terminator ("\n" or "\r\n").
	// The last line of a stream may have no terminator.
	Line []byte

	// Source yields lines until the underlying stream is exhausted.
	// ReadLine returns io.EOF once no bytes remain. A non-EOF error is a read
	// failure; the returned Line must be ignored in that case.
	Source interface {
		ReadLine() (Line, error)
	}

	// Reader is a Source backed by a buffered io.Reader.
	Reader struct {
		br *bufio.Reader
	}
)

// NewReader wraps r in a buffered line Source.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{br: br}
	}
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line with its terminator. The returned slice is
// owned by the caller.
func (r *Reader) ReadLine() (Line, error) {
	b, err := r.br.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(b) > 0 {
				return Line(b), nil
			}
			return nil, io.EOF
		}
		return nil, err
	}
	return Line(b), nil
}

// Read exposes the buffered bytes so byte-oriented tools (head -c) can share
// the same Source.
func (r *Reader) Read(p []byte) (int, error) {
	return r.br.Read(p)
}

// Text returns the line without its terminator.
func (l Line) Text() []byte {
	return l[:len(l)-len(l.Terminator())]
}

// Terminator returns the trailing "\r\n", "\n", or nil when the line is
// unterminated.
func (l Line) Terminator() []byte {
	switch {
	case bytes.HasSuffix(l, []byte("\r\n")):
		return l[len(l)-2:]
	case bytes.HasSuffix(l, []byte("\n")):
		return l[len(l)-1:]
	default:
		return nil
	}
}

// IsBlank reports whether the line has no content besides its terminator.
func (l Line) IsBlank() bool {
	return len(l.Text()) == 0
}

// Equal reports exact byte equality, terminators included.
func (l Line) Equal(other Line) bool {
	return bytes.Equal(l, other)
}

// String returns the line as a string, terminator included.
func (l Line) String() string {
	return string(l)
}
