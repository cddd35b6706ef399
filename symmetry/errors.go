// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// errors.go — sentinel errors for the symmetry package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the return site.
//   • A failed lookup (Locate) is reported with ok == false, not an error.

package symmetry

import "errors"

var (
	// ErrInvalidVariables indicates a variable count outside [0, MaxVariables].
	ErrInvalidVariables = errors.New("symmetry: number of variables out of range")

	// ErrInvalidIndex indicates a negative truth-table index.
	ErrInvalidIndex = errors.New("symmetry: decimal index must be non-negative")

	// ErrIndexOutOfRange indicates an index ≥ 2^n where a cell must exist.
	ErrIndexOutOfRange = errors.New("symmetry: decimal index out of range")

	// ErrOutOfRange indicates a (row, col) position outside the matrix.
	ErrOutOfRange = errors.New("symmetry: position out of range")

	// ErrTruthTableSize indicates a truth table whose length is not 2^n.
	ErrTruthTableSize = errors.New("symmetry: truth table length must be 2^n")

	// ErrBadValue indicates a truth-table symbol other than 0, 1, -, x or X.
	ErrBadValue = errors.New("symmetry: invalid truth-table value")

	// ErrUnknownLayout indicates an unrecognised layout name.
	ErrUnknownLayout = errors.New("symmetry: unknown layout")
)
