// SPDX-License-Identifier: MPL-2.0

package runs

import (
	"bytes"
	"testing"

	"github.com/invowk/textkit/internal/lines"

	"gotest.tools/v3/assert"
)

func TestWriter_Emit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		showCount bool
		width     int
		run       Run
		want      string
	}{
		{name: "plain", run: Run{Line: lines.Line("a\n"), Count: 3}, want: "a\n"},
		{name: "counted default width", showCount: true, run: Run{Line: lines.Line("a\n"), Count: 3}, want: "   3 a\n"},
		{name: "counted wide", showCount: true, width: 7, run: Run{Line: lines.Line("a\n"), Count: 12}, want: "     12 a\n"},
		{name: "count wider than field", showCount: true, width: 2, run: Run{Line: lines.Line("z"), Count: 12345}, want: "12345 z"},
		{name: "unterminated line stays unterminated", run: Run{Line: lines.Line("end"), Count: 1}, want: "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			assert.NilError(t, NewWriter(&buf, tt.showCount, tt.width).Emit(tt.run))
			assert.Equal(t, buf.String(), tt.want)
		})
	}
}

func TestFilter_Emit(t *testing.T) {
	t.Parallel()

	in := []Run{
		{Line: lines.Line("a\n"), Count: 2},
		{Line: lines.Line("b\n"), Count: 1},
		{Line: lines.Line("c\n"), Count: 5},
	}

	tests := []struct {
		sel  Selection
		want string
	}{
		{sel: SelectAll, want: "a\nb\nc\n"},
		{sel: SelectRepeated, want: "a\nc\n"},
		{sel: SelectUnique, want: "b\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		f := &Filter{Next: NewWriter(&buf, false, 0), Select: tt.sel}
		for _, r := range in {
			assert.NilError(t, f.Emit(r))
		}
		assert.Equal(t, buf.String(), tt.want, "selection %d", tt.sel)
	}
}

func TestFoldCase(t *testing.T) {
	t.Parallel()

	assert.Assert(t, !FoldCase(lines.Line("Straße\n"), lines.Line("STRASSE\n")))
	assert.Assert(t, FoldCase(lines.Line("Hello\n"), lines.Line("hELLO\n")))
	assert.Assert(t, !FoldCase(lines.Line("hello\n"), lines.Line("hello")))
}
