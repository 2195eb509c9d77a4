// SPDX-License-Identifier: MPL-2.0

// Package lines provides the line-oriented input abstraction shared by every
// textkit utility.
//
// A Source yields one Line at a time, terminator included, so tools can echo
// input byte-for-byte (a final line without a newline stays without one).
// Open is the single factory that maps an operand to a Source: the reserved
// operand "-" selects standard input and anything else opens the named file,
// resolved against a working directory.
package lines
