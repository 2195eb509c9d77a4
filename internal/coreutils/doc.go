// SPDX-License-Identifier: MPL-2.0

// Package coreutils implements the textkit utilities: cat, find, head, uniq
// and wc.
//
// Each utility is a Tool: a struct holding its parsed options, a Validate
// method that rejects bad option values before any I/O happens, and a Run
// method that processes its operands against a HandlerContext.
//
// # Operands
//
// Operands are processed strictly in order. The operand "-" (and an empty
// operand list) selects standard input. Relative paths resolve against
// HandlerContext.Dir.
//
// # Error Format
//
// A failure to open or read one operand is written to HandlerContext.Stderr
// as a single diagnostic line and processing continues with the next operand:
//
//	wc: missing.txt: no such file or directory
//
// When any operand failed, Run returns an error wrapping ErrPartialFailure
// after all operands were processed. Invalid option values are reported as
// InvalidArgumentError before any operand is opened. Failures writing to
// standard output abort the whole run.
//
// # Streaming I/O
//
// Every tool reads through lines.Source and never holds more than one line
// (plus, for uniq, the representative of the open run) in memory.
package coreutils
