// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

var (
	// ErrPartialFailure is wrapped by PartialFailureError.
	ErrPartialFailure = errors.New("some operands could not be processed")
	// ErrInvalidArgument is wrapped by InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

type (
	// PartialFailureError is returned after all operands were processed when
	// at least one of them failed. The failures were already reported.
	PartialFailureError struct {
		Tool   string
		Failed int
	}

	// InvalidArgumentError reports a malformed option value.
	// It wraps ErrInvalidArgument for errors.Is() compatibility.
	InvalidArgumentError struct {
		Tool   string
		Flag   string
		Value  string
		Reason string
	}

	// OutputError marks a failure writing results. Output failures abort the
	// run instead of moving on to the next operand.
	OutputError struct {
		Err error
	}
)

// Error implements the error interface.
func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: %d operand(s) could not be processed", e.Tool, e.Failed)
}

// Unwrap returns ErrPartialFailure.
func (e *PartialFailureError) Unwrap() error {
	return ErrPartialFailure
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Reason != "" && e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Tool, e.Reason)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s -- %s", e.Tool, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: invalid value %q for --%s", e.Tool, e.Value, e.Flag)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Error implements the error interface.
func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output: %v", e.Err)
}

// Unwrap returns the underlying write error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// outputErr wraps a non-nil write error as an OutputError.
func outputErr(err error) error {
	if err == nil {
		return nil
	}
	var oe *OutputError
	if errors.As(err, &oe) {
		return err
	}
	return &OutputError{Err: err}
}

// IsBrokenPipe reports whether err is a broken or closed pipe, which happens
// when a downstream reader (like `head`) exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
