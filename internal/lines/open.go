// SPDX-License-Identifier: MPL-2.0

package lines

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// StdinName is the reserved operand that selects standard input.
const StdinName = "-"

// ErrOpen is the sentinel wrapped by OpenError.
var ErrOpen = errors.New("cannot open input")

type (
	// OpenError is returned when an operand cannot be opened.
	// It wraps ErrOpen for errors.Is() compatibility and keeps the operand
	// exactly as the user typed it.
	OpenError struct {
		Name string
		Err  error
	}

	// Input is an opened operand. Close releases the underlying file; closing
	// standard input is a no-op.
	Input struct {
		*Reader
		Name   string
		closer io.Closer
	}
)

// Error implements the error interface. The message carries the operand and
// the bare OS reason ("no such file or directory"), not the resolved path.
func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, Reason(e.Err))
}

// Unwrap returns ErrOpen and the underlying cause.
func (e *OpenError) Unwrap() []error {
	return []error{ErrOpen, e.Err}
}

// Open resolves name against dir and opens it for buffered line reading.
// The operand "-" returns stdin wrapped as an Input.
func Open(name string, stdin io.Reader, dir string) (*Input, error) {
	if name == StdinName {
		return &Input{Reader: NewReader(stdin), Name: name}, nil
	}

	path := name
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Name: name, Err: err}
	}

	// Directories open fine on unix but fail on first read; report them as an
	// open failure so callers treat them like a missing file.
	if info, statErr := f.Stat(); statErr == nil && info.IsDir() {
		_ = f.Close()
		return nil, &OpenError{Name: name, Err: &fs.PathError{Op: "read", Path: path, Err: errIsDirectory}}
	}

	return &Input{Reader: NewReader(f), Name: name, closer: f}, nil
}

// Close closes the underlying file, if any.
func (in *Input) Close() error {
	if in.closer == nil {
		return nil
	}
	return in.closer.Close()
}

// IsStdin reports whether the input was opened from the "-" operand.
func (in *Input) IsStdin() bool {
	return in.Name == StdinName
}

var errIsDirectory = errors.New("is a directory")

// Reason strips *fs.PathError wrapping so diagnostics show only the cause.
func Reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
