// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// newFindTree creates:
//
//	root/a.txt
//	root/b.csv
//	root/sub/c.txt
//	root/sub/deeper/d.md
//	root/link -> a.txt (unix only)
func newFindTree(t *testing.T) *testEnv {
	t.Helper()

	env := newTestEnv(t, "")
	env.writeFile(t, "root/a.txt", "a")
	env.writeFile(t, "root/b.csv", "b")
	env.writeFile(t, "root/sub/c.txt", "c")
	env.writeFile(t, "root/sub/deeper/d.md", "d")
	if runtime.GOOS != "windows" {
		if err := os.Symlink("a.txt", filepath.Join(env.dir, "root", "link")); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}
	}
	return env
}

func runFind(t *testing.T, env *testEnv, opts FindOptions, operands ...string) []string {
	t.Helper()

	f, err := NewFind(opts)
	if err != nil {
		t.Fatalf("NewFind() returned error: %v", err)
	}
	if err := Execute(t.Context(), f, env.hc, operands); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	out := strings.TrimSuffix(env.stdout.String(), "\n")
	if out == "" {
		return nil
	}
	got := strings.Split(filepath.ToSlash(out), "\n")
	sort.Strings(got)
	return got
}

func TestFind_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink fixture requires unix")
	}
	t.Parallel()

	tests := []struct {
		name string
		opts FindOptions
		want []string
	}{
		{
			name: "everything",
			opts: FindOptions{MaxDepth: -1},
			want: []string{"root", "root/a.txt", "root/b.csv", "root/link", "root/sub", "root/sub/c.txt", "root/sub/deeper", "root/sub/deeper/d.md"},
		},
		{
			name: "regex name",
			opts: FindOptions{Names: []string{`\.txt$`}, MaxDepth: -1},
			want: []string{"root/a.txt", "root/sub/c.txt"},
		},
		{
			name: "regex is unanchored",
			opts: FindOptions{Names: []string{"e"}, MaxDepth: -1},
			want: []string{"root/sub/deeper"},
		},
		{
			name: "several names match any",
			opts: FindOptions{Names: []string{`csv$`, `md$`}, MaxDepth: -1},
			want: []string{"root/b.csv", "root/sub/deeper/d.md"},
		},
		{
			name: "glob",
			opts: FindOptions{Globs: []string{"*.txt"}, MaxDepth: -1},
			want: []string{"root/a.txt", "root/sub/c.txt"},
		},
		{
			name: "glob matches the whole name",
			opts: FindOptions{Globs: []string{"a"}, MaxDepth: -1},
			want: nil,
		},
		{
			name: "type dir",
			opts: FindOptions{Types: []string{"d"}, MaxDepth: -1},
			want: []string{"root", "root/sub", "root/sub/deeper"},
		},
		{
			name: "type link is not followed",
			opts: FindOptions{Types: []string{"l"}, MaxDepth: -1},
			want: []string{"root/link"},
		},
		{
			name: "type file or link",
			opts: FindOptions{Types: []string{"f", "l"}, Names: []string{"^[al]"}, MaxDepth: -1},
			want: []string{"root/a.txt", "root/link"},
		},
		{
			name: "max depth",
			opts: FindOptions{MaxDepth: 1, Types: []string{"f"}},
			want: []string{"root/a.txt", "root/b.csv"},
		},
		{
			name: "min depth",
			opts: FindOptions{MinDepth: 2, MaxDepth: -1, Types: []string{"f"}},
			want: []string{"root/sub/c.txt", "root/sub/deeper/d.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newFindTree(t)
			got := runFind(t, env, tt.opts, "root")
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("find = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFind_Run_DotOperandKeepsPrefix(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "")
	env.writeFile(t, "x.txt", "x")

	got := runFind(t, env, FindOptions{Types: []string{"f"}, MaxDepth: -1})
	want := "." + string(os.PathSeparator) + "x.txt"
	if len(got) != 1 || got[0] != filepath.ToSlash(want) {
		t.Errorf("find = %v, want [%s]", got, want)
	}
}

func TestFind_Run_MissingPathContinues(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "")
	env.writeFile(t, "real/f.txt", "f")

	f, err := NewFind(FindOptions{Types: []string{"f"}, MaxDepth: -1})
	if err != nil {
		t.Fatalf("NewFind() returned error: %v", err)
	}
	err = Execute(t.Context(), f, env.hc, []string{"ghost", "real"})
	if !errors.Is(err, ErrPartialFailure) {
		t.Fatalf("Run() error = %v, want ErrPartialFailure", err)
	}
	if got := filepath.ToSlash(env.stdout.String()); got != "real/f.txt\n" {
		t.Errorf("stdout = %q, want %q", got, "real/f.txt\n")
	}
	if got := env.stderr.String(); got != "find: ghost: no such file or directory\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestNewFind_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts FindOptions
		flag string
	}{
		{name: "bad regex", opts: FindOptions{Names: []string{"("}}, flag: "name"},
		{name: "bad type", opts: FindOptions{Types: []string{"x"}}, flag: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFind(tt.opts)
			var iae *InvalidArgumentError
			if !errors.As(err, &iae) {
				t.Fatalf("NewFind() error = %v, want *InvalidArgumentError", err)
			}
			if iae.Flag != tt.flag {
				t.Errorf("Flag = %q, want %q", iae.Flag, tt.flag)
			}
		})
	}
}

func TestFind_Validate_Depths(t *testing.T) {
	t.Parallel()

	f, err := NewFind(FindOptions{MinDepth: 3, MaxDepth: 1})
	if err != nil {
		t.Fatalf("NewFind() returned error: %v", err)
	}
	if err := f.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
	}
}
