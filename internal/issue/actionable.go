// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"
)

type (
	// ActionableError annotates a failure for the person at the terminal:
	// what textkit was doing (Operation), what it was working on (Resource),
	// which catalogued Issue explains this class of failure, and concrete
	// next steps. Build one with ErrorContext:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("run head").
	//		WithIssue(issue.InvalidArgumentId).
	//		WithSuggestion("COUNT must be a positive integer, e.g. 'head -n 5'").
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		Operation   string
		Resource    string
		Issue       Id
		Suggestions []string
		Cause       error
	}

	// ErrorContext accumulates annotations until Build.
	ErrorContext struct {
		ae ActionableError
	}
)

// NewErrorContext starts an empty annotation set.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Hints returns the suggestions as an indented bullet list, one per line,
// or "" when there are none.
func (e *ActionableError) Hints() string {
	var sb strings.Builder
	for _, s := range e.Suggestions {
		sb.WriteString("  • ")
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Chain lists every error below the cause, depth first. Errors that wrap
// several causes (Unwrap() []error) contribute each branch in order.
func (e *ActionableError) Chain() []error {
	var chain []error
	var walk func(err error)
	walk = func(err error) {
		if err == nil {
			return
		}
		chain = append(chain, err)
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(e.Cause)
	return chain
}

// Format renders Error followed by a blank line and the hints. Verbose output
// appends the numbered cause chain.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if hints := e.Hints(); hints != "" {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSuffix(hints, "\n"))
	}

	if chain := e.Chain(); verbose && len(chain) > 0 {
		sb.WriteString("\n\nError chain:")
		for i, err := range chain {
			fmt.Fprintf(&sb, "\n  %d. %s", i+1, err)
		}
	}

	return sb.String()
}

// WithOperation names what was attempted, as a verb phrase ("load configuration").
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.ae.Operation = op
	return c
}

// WithResource names the file or operand involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.ae.Resource = res
	return c
}

// WithIssue links the catalogued explanation rendered in verbose mode.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.ae.Issue = id
	return c
}

// WithSuggestion appends next steps; empty strings are skipped.
func (c *ErrorContext) WithSuggestion(sugs ...string) *ErrorContext {
	for _, s := range sugs {
		if s != "" {
			c.ae.Suggestions = append(c.ae.Suggestions, s)
		}
	}
	return c
}

// Wrap records the underlying failure.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.ae.Cause = err
	return c
}

// Build returns the annotated error, or nil when no operation was given.
func (c *ErrorContext) Build() *ActionableError {
	if c.ae.Operation == "" {
		return nil
	}
	ae := c.ae
	ae.Suggestions = append([]string(nil), c.ae.Suggestions...)
	return &ae
}

// BuildError is Build returning an untyped nil instead of a nil pointer.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
