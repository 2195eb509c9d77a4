// SPDX-License-Identifier: MPL-2.0

package tally

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/invowk/textkit/internal/lines"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Counts
	}{
		{
			name:  "quote with crlf",
			input: "I don't want the world. I just want your half.\r\n",
			want:  Counts{Lines: 1, Words: 10, Bytes: 48, Chars: 48},
		},
		{name: "empty", input: "", want: Counts{}},
		{name: "blank lines", input: "\n\n", want: Counts{Lines: 2, Bytes: 2, Chars: 2}},
		{
			name:  "final line without newline counts",
			input: "hello world\nfoo",
			want:  Counts{Lines: 2, Words: 3, Bytes: 15, Chars: 15},
		},
		{
			name:  "multibyte characters",
			input: "héllo wörld\n",
			want:  Counts{Lines: 1, Words: 2, Bytes: 14, Chars: 12},
		},
		{
			name:  "tabs and repeated spaces",
			input: "  a\t\tb   c  \n",
			want:  Counts{Lines: 1, Words: 3, Bytes: 13, Chars: 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Count(lines.NewReader(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("Count() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Count() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCount_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Count(lines.NewReader(iotest.ErrReader(boom)))
	if !errors.Is(err, boom) {
		t.Fatalf("Count() error = %v, want %v", err, boom)
	}
}

func TestCounts_Add(t *testing.T) {
	t.Parallel()

	a := Counts{Lines: 1, Words: 2, Bytes: 3, Chars: 4}
	b := Counts{Lines: 10, Words: 20, Bytes: 30, Chars: 40}
	want := Counts{Lines: 11, Words: 22, Bytes: 33, Chars: 44}
	if got := a.Add(b); got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestSelection(t *testing.T) {
	t.Parallel()

	if got, want := (Selection{}).Normalize(), (Selection{Lines: true, Words: true, Bytes: true}); got != want {
		t.Errorf("Normalize() of empty = %+v, want %+v", got, want)
	}
	if got, want := (Selection{Chars: true}).Normalize(), (Selection{Chars: true}); got != want {
		t.Errorf("Normalize() should keep explicit selection, got %+v", got)
	}
	if err := (Selection{Bytes: true, Chars: true}).Validate(); !errors.Is(err, ErrConflictingSelection) {
		t.Errorf("Validate() = %v, want ErrConflictingSelection", err)
	}
	if err := (Selection{Lines: true, Chars: true}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	c := Counts{Lines: 1, Words: 10, Bytes: 48, Chars: 47}

	tests := []struct {
		name  string
		sel   Selection
		file  string
		width int
		want  string
	}{
		{name: "default selection", sel: Selection{}.Normalize(), file: "quote.txt", want: "       1      10      48 quote.txt\n"},
		{name: "stdin has no name", sel: Selection{Lines: true}, file: "-", want: "       1\n"},
		{name: "chars replace bytes", sel: Selection{Words: true, Chars: true}, file: "q", want: "      10      47 q\n"},
		{name: "custom width", sel: Selection{Lines: true, Words: true}, file: "total", width: 3, want: "  1 10 total\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Render(&buf, c, tt.sel, tt.file, tt.width); err != nil {
				t.Fatalf("Render() returned error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
