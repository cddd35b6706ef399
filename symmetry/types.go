// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// types.go — bit-vectors, positions, layouts and the matrix type.

package symmetry

import (
	"fmt"
	"strings"
)

// MaxVariables bounds the variable count accepted by every constructor.
// A 16-variable diagram already has 65536 cells.
const MaxVariables = 16

// BitVector is an ordered sequence of 0/1 integers, most-significant bit first.
type BitVector []int

// Uint interprets the vector as an unsigned binary number (MSB first).
// The empty vector is 0.
func (v BitVector) Uint() uint64 {
	var u uint64
	for _, b := range v {
		u = u<<1 | uint64(b&1)
	}

	return u
}

// Bits renders the vector as a bit-string, e.g. "0110".
func (v BitVector) Bits() string {
	var sb strings.Builder
	sb.Grow(len(v))
	for _, b := range v {
		sb.WriteByte(byte('0' + b&1))
	}

	return sb.String()
}

// String renders the vector as a list, e.g. "[0, 1, 1, 0]".
func (v BitVector) String() string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = fmt.Sprint(b)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Position is a (row, column) cell coordinate in a symmetry diagram.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Slice returns the position as a two-element [row, col] slice.
func (p Position) Slice() []int { return []int{p.Row, p.Col} }

// String renders the position as "[row, col]".
func (p Position) String() string { return fmt.Sprintf("[%d, %d]", p.Row, p.Col) }

// Layout selects how a row code and a column code are merged into a cell's
// bit-vector.
type Layout int

const (
	// Concatenated places the row code first and the column code after it.
	Concatenated Layout = iota
	// Interleaved alternates row and column bits, starting with a row bit.
	Interleaved
)

// String returns the lower-case layout name.
func (l Layout) String() string {
	switch l {
	case Concatenated:
		return "concatenated"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

func (l Layout) valid() bool { return l == Concatenated || l == Interleaved }

// ParseLayout maps a layout name (case-insensitive) to a Layout.
// "kv" is accepted as an alias for Interleaved.
// Returns ErrUnknownLayout for anything else.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "concatenated", "concat":
		return Concatenated, nil
	case "interleaved", "kv":
		return Interleaved, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLayout)
	}
}

// Matrix is the symmetry-diagram matrix: Matrix[i][j] holds the bit-vector
// of the cell in row i, column j. It is not modified after construction.
type Matrix [][]BitVector

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// At returns the bit-vector stored at p.
// Returns ErrOutOfRange if p lies outside the matrix.
func (m Matrix) At(p Position) (BitVector, error) {
	if p.Row < 0 || p.Row >= m.Rows() || p.Col < 0 || p.Col >= m.Cols() {
		return nil, fmt.Errorf("%v in %dx%d: %w", p, m.Rows(), m.Cols(), ErrOutOfRange)
	}

	return m[p.Row][p.Col], nil
}
