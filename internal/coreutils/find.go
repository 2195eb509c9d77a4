// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/invowk/textkit/internal/lines"

	"golang.org/x/exp/slices"
	"mvdan.cc/sh/v3/pattern"
)

const (
	// EntryFile matches regular files ("f").
	EntryFile EntryType = "f"
	// EntryDir matches directories ("d").
	EntryDir EntryType = "d"
	// EntryLink matches symbolic links ("l").
	EntryLink EntryType = "l"
)

type (
	// EntryType is a find -type value.
	EntryType string

	// Find walks directory trees and prints entries matching its filters.
	// Construct with NewFind so patterns are compiled once.
	Find struct {
		names    []*regexp.Regexp
		globs    []*regexp.Regexp
		types    []EntryType
		minDepth int
		maxDepth int
	}

	// FindOptions are the raw find options as given on the command line.
	FindOptions struct {
		// Names are unanchored regular expressions matched against base names.
		Names []string
		// Globs are shell patterns matched against whole base names.
		Globs []string
		// Types restrict matches to the given entry types.
		Types []string
		// MinDepth skips entries shallower than this depth (the operand is depth 0).
		MinDepth int
		// MaxDepth stops descending below this depth; negative means unlimited.
		MaxDepth int
	}
)

// ParseEntryType validates a -type value.
func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case EntryFile, EntryDir, EntryLink:
		return t, nil
	default:
		return "", &InvalidArgumentError{Tool: "find", Flag: "type", Value: s}
	}
}

// NewFind compiles opts. Invalid patterns and types are reported as
// InvalidArgumentError.
func NewFind(opts FindOptions) (*Find, error) {
	f := &Find{minDepth: opts.MinDepth, maxDepth: opts.MaxDepth}

	for _, name := range opts.Names {
		re, err := regexp.Compile(name)
		if err != nil {
			return nil, &InvalidArgumentError{Tool: f.Name(), Flag: "name", Value: name}
		}
		f.names = append(f.names, re)
	}

	for _, glob := range opts.Globs {
		expr, err := pattern.Regexp(glob, pattern.EntireString|pattern.Filenames)
		if err != nil {
			return nil, &InvalidArgumentError{Tool: f.Name(), Flag: "glob", Value: glob}
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &InvalidArgumentError{Tool: f.Name(), Flag: "glob", Value: glob}
		}
		f.globs = append(f.globs, re)
	}

	for _, s := range opts.Types {
		t, err := ParseEntryType(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(f.types, t) {
			f.types = append(f.types, t)
		}
	}

	return f, nil
}

// Name returns the command name.
func (f *Find) Name() string {
	return "find"
}

// Validate rejects impossible depth bounds.
func (f *Find) Validate() error {
	if f.minDepth < 0 {
		return &InvalidArgumentError{Tool: f.Name(), Flag: "min-depth", Value: fmt.Sprint(f.minDepth)}
	}
	if f.maxDepth >= 0 && f.minDepth > f.maxDepth {
		return &InvalidArgumentError{Tool: f.Name(), Flag: "min-depth", Reason: "--min-depth is greater than --max-depth"}
	}
	return nil
}

// Run walks each operand (default ".") and prints matching paths, one per
// line. Symlinks are reported, never followed. Unreadable paths are reported
// and the walk continues.
func (f *Find) Run(ctx context.Context, hc *HandlerContext, operands []string) error {
	if len(operands) == 0 {
		operands = []string{"."}
	}

	return hc.buffered(func(w *bufio.Writer) error {
		r := &reporter{hc: hc, tool: f.Name(), out: w}
		for _, root := range operands {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", f.Name(), err)
			}
			if err := f.walk(ctx, hc, w, r, root); err != nil {
				return err
			}
		}
		return r.result()
	})
}

// walk traverses one operand. Only output and cancellation errors are
// returned; everything else is reported through r.
func (f *Find) walk(ctx context.Context, hc *HandlerContext, w *bufio.Writer, r *reporter, root string) error {
	resolved := root
	if !filepath.IsAbs(resolved) && hc.Dir != "" {
		resolved = filepath.Join(hc.Dir, resolved)
	}

	return filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		display := displayPath(root, resolved, path)
		if err != nil {
			if rerr := r.reportf("%s: %s", display, lines.Reason(err)); rerr != nil {
				return rerr
			}
			// d is nil when the operand itself could not be stat'ed.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		depth := depthOf(resolved, path)
		if f.matches(d, depth) {
			if _, werr := fmt.Fprintln(w, display); werr != nil {
				return outputErr(werr)
			}
		}
		if d.IsDir() && f.maxDepth >= 0 && depth >= f.maxDepth {
			return fs.SkipDir
		}
		return nil
	})
}

// matches applies depth, type and name filters. Within one filter kind any
// value may match; different kinds must all match.
func (f *Find) matches(d fs.DirEntry, depth int) bool {
	if depth < f.minDepth || (f.maxDepth >= 0 && depth > f.maxDepth) {
		return false
	}

	if len(f.types) > 0 && !slices.ContainsFunc(f.types, func(t EntryType) bool {
		return typeMatches(t, d.Type())
	}) {
		return false
	}

	if len(f.names) == 0 && len(f.globs) == 0 {
		return true
	}
	name := d.Name()
	for _, re := range f.names {
		if re.MatchString(name) {
			return true
		}
	}
	for _, re := range f.globs {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func typeMatches(t EntryType, mode fs.FileMode) bool {
	switch t {
	case EntryDir:
		return mode.IsDir()
	case EntryLink:
		return mode&fs.ModeSymlink != 0
	case EntryFile:
		return mode.IsRegular()
	default:
		return false
	}
}

// depthOf returns how many path elements path is below root.
func depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(os.PathSeparator)) + 1
}

// displayPath maps a walked path back onto the operand as the user typed it:
// "." walks print "./a", not "a".
func displayPath(operand, resolved, path string) string {
	rel, err := filepath.Rel(resolved, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return operand
	}
	if strings.HasSuffix(operand, string(os.PathSeparator)) {
		return operand + rel
	}
	return operand + string(os.PathSeparator) + rel
}
