// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation suggestions. The Issue catalog holds longer markdown guidance
// per failure class, rendered with glamour in verbose mode.
package issue
