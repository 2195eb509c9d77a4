// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/invowk/textkit/internal/coreutils"
	"github.com/invowk/textkit/internal/issue"
)

// flagHints holds next steps for rejected option values, keyed by
// "tool/flag". Operand errors use an empty flag ("uniq/").
var flagHints = map[string][]string{
	"cat/number": {
		"Use -n to number every line or -b to number non-blank lines, not both",
	},
	"head/lines": {
		"COUNT must be a positive integer, e.g. 'head -n 5'",
		"The default comes from head.lines in the config file",
	},
	"head/bytes": {
		"BYTES must be a positive integer, e.g. 'head -c 512'",
		"-c and -n cannot be combined",
	},
	"uniq/": {
		"uniq takes at most two operands: IN_FILE and OUT_FILE",
		"Concatenate several inputs first: 'textkit cat a b | textkit uniq'",
	},
	"wc/chars": {
		"Use -c to count bytes or -m to count characters, not both",
	},
	"find/name": {
		"--name takes a regular expression, e.g. '\\.go$'",
		"Use --glob for shell patterns like '*.go'",
	},
	"find/glob": {
		"--glob takes a shell pattern matched against the base name, e.g. '*.txt'",
	},
	"find/type": {
		"Valid types are f (file), d (directory) and l (symlink)",
	},
	"find/min-depth": {
		"Depths count from the starting path (0); --min-depth must not exceed --max-depth",
	},
}

// toolIssue annotates a failed tool run with its catalogued explanation and
// tool-specific next steps.
func toolIssue(tool string, err error) *issue.ActionableError {
	ctx := issue.NewErrorContext().
		WithOperation("run " + tool).
		Wrap(err)

	var (
		invalid *coreutils.InvalidArgumentError
		partial *coreutils.PartialFailureError
		output  *coreutils.OutputError
	)
	switch {
	case errors.As(err, &invalid):
		ctx.WithIssue(issue.InvalidArgumentId).
			WithSuggestion(flagHints[invalid.Tool+"/"+invalid.Flag]...).
			WithSuggestion("See 'textkit manual " + tool + "' for the accepted values")
	case errors.As(err, &partial):
		ctx.WithIssue(issue.OperandFailedId).
			WithSuggestion("Each failed operand is named in the diagnostics above; the others were processed")
	case errors.As(err, &output):
		ctx.WithIssue(issue.OutputFailedId).
			WithSuggestion("Check free space and permissions where the output is written")
		if tool == "uniq" {
			ctx.WithSuggestion("Make sure the directory of OUT_FILE exists")
		}
	}

	return ctx.Build()
}
