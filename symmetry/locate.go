// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// locate.go — IndexLocator: truth-table index → (row, col).

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/symdiag/gray"
)

// Locate returns the position of the cell in BuildMatrix(n, opts...) whose
// bit-vector, read as binary with the most-significant bit first, equals
// index.
//
// The matrix is scanned in row-major order and the first match is returned;
// by construction there is exactly one for every index in [0, 2^n-1].
// An index ≥ 2^n has no cell: Locate then returns ok == false and a nil
// error, and callers must check ok.
//
// Returns ErrInvalidVariables for n outside [0, MaxVariables] and
// ErrInvalidIndex for a negative index.
// Complexity: O(n·2^n).
func Locate(index, n int, opts ...Option) (pos Position, ok bool, err error) {
	if err = validateVariables(n); err != nil {
		return Position{}, false, err
	}
	if index < 0 {
		return Position{}, false, fmt.Errorf("index=%d: %w", index, ErrInvalidIndex)
	}
	m, err := BuildMatrix(n, opts...)
	if err != nil {
		return Position{}, false, err
	}
	pos, ok = m.Locate(index)

	return pos, ok, nil
}

// Locate scans m in row-major order for the cell whose bit-vector equals
// index and reports whether one was found. Negative indices never match.
// Complexity: O(cells·n).
func (m Matrix) Locate(index int) (Position, bool) {
	if index < 0 {
		return Position{}, false
	}
	want := uint64(index)
	for i, row := range m {
		for j, cell := range row {
			if cell.Uint() == want {
				return Position{Row: i, Col: j}, true
			}
		}
	}

	return Position{}, false
}

// PositionOf computes the cell of index directly: the row and column bits of
// index are extracted per layout and Gray-decoded into their sequence
// positions. It always agrees with Locate.
//
// Returns ErrInvalidVariables, ErrInvalidIndex, or ErrIndexOutOfRange for an
// index ≥ 2^n.
// Complexity: O(n).
func PositionOf(index, n int, opts ...Option) (Position, error) {
	if err := validateVariables(n); err != nil {
		return Position{}, err
	}
	if index < 0 {
		return Position{}, fmt.Errorf("index=%d: %w", index, ErrInvalidIndex)
	}
	if uint64(index) >= uint64(1)<<uint(n) {
		return Position{}, fmt.Errorf("index=%d, n=%d: %w", index, n, ErrIndexOutOfRange)
	}
	o := gatherOptions(opts...)
	rowCode, colCode := split(o.layout, uint64(index), n)

	return Position{
		Row: int(gray.Decode(rowCode)),
		Col: int(gray.Decode(colCode)),
	}, nil
}
