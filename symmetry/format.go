// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// format.go — labels shown on rendered diagrams.

package symmetry

import (
	"fmt"
	"strconv"
)

// Octal returns the octal label of a truth-table index ("17" for 15).
// Returns ErrInvalidIndex for a negative index.
func Octal(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("index=%d: %w", index, ErrInvalidIndex)
	}

	return strconv.FormatInt(int64(index), 8), nil
}

// VariableName returns the conventional name of variable position i:
// "A" for the most-significant variable, then "B", "C", … "Z".
// Positions beyond the alphabet are named "x26", "x27", ….
func VariableName(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}

	return "x" + strconv.Itoa(i)
}

// AxisLabel joins the names of the given variable positions, e.g. "AB".
func AxisLabel(positions []int) string {
	var out string
	for _, p := range positions {
		out += VariableName(p)
	}

	return out
}
