// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// layout.go — which bit positions of a cell belong to the row code and which
// to the column code.
//
// Positions count from the most-significant bit (0) of an n-bit vector.
//   Concatenated: rows 0..a-1,      cols a..n-1
//   Interleaved:  rows 0, 2, 4, …,  cols 1, 3, 5, …
// with a = ⌈n/2⌉ row bits and b = ⌊n/2⌋ column bits in both cases.

package symmetry

import (
	"fmt"
	"strings"
)

// splitBits returns a = ⌈n/2⌉ and b = ⌊n/2⌋.
func splitBits(n int) (a, b int) {
	return (n + 1) / 2, n / 2
}

// validateVariables enforces 0 ≤ n ≤ MaxVariables.
func validateVariables(n int) error {
	if n < 0 || n > MaxVariables {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidVariables)
	}

	return nil
}

// Axes reports which variable positions (0 = most-significant, "A") label the
// row axis and which label the column axis for an n-variable diagram.
// The result is empty for n ≤ 0.
func Axes(n int, l Layout) (rows, cols []int) {
	if n <= 0 {
		return nil, nil
	}
	a, b := splitBits(n)
	rows, cols = make([]int, 0, a), make([]int, 0, b)
	if l == Interleaved {
		for pos := 0; pos < n; pos++ {
			if pos%2 == 0 {
				rows = append(rows, pos)
			} else {
				cols = append(cols, pos)
			}
		}

		return rows, cols
	}
	for pos := 0; pos < a; pos++ {
		rows = append(rows, pos)
	}
	for pos := a; pos < n; pos++ {
		cols = append(cols, pos)
	}

	return rows, cols
}

// combine merges a row code and a column code (bit-strings) into the cell's
// n-bit string according to the layout.
func combine(l Layout, rowCode, colCode string) string {
	if l != Interleaved {
		return rowCode + colCode
	}
	var sb strings.Builder
	sb.Grow(len(rowCode) + len(colCode))
	for k := 0; k < len(rowCode); k++ {
		sb.WriteByte(rowCode[k])
		if k < len(colCode) {
			sb.WriteByte(colCode[k])
		}
	}

	return sb.String()
}

// split extracts the row and column codes (as integers, MSB first) from an
// n-bit value d according to the layout.
func split(l Layout, d uint64, n int) (rowCode, colCode uint64) {
	rows, cols := Axes(n, l)
	for _, pos := range rows {
		rowCode = rowCode<<1 | (d>>uint(n-1-pos))&1
	}
	for _, pos := range cols {
		colCode = colCode<<1 | (d>>uint(n-1-pos))&1
	}

	return rowCode, colCode
}
