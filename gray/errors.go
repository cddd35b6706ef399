// SPDX-License-Identifier: MIT
// Package: symdiag/gray
//
// errors.go — sentinel errors for the gray package.
//
// Callers branch with errors.Is; implementations add context with %w.

package gray

import "errors"

var (
	// ErrInvalidWidth indicates a bit width outside [0, MaxWidth].
	ErrInvalidWidth = errors.New("gray: bit width out of range")

	// ErrLengthMismatch indicates two codes of different length were compared.
	ErrLengthMismatch = errors.New("gray: code length mismatch")

	// ErrNotBinary indicates a code contains a rune other than '0' or '1'.
	ErrNotBinary = errors.New("gray: code is not a binary string")
)
