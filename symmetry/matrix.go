// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// matrix.go — MatrixBuilder: Gray-ordered cross product of row and column codes.

package symmetry

import (
	"github.com/katalvlaran/symdiag/gray"
)

// Dimensions returns the diagram shape for n variables:
// rows = 2^⌈n/2⌉, cols = 2^⌊n/2⌋.
// Returns ErrInvalidVariables if n < 0 or n > MaxVariables.
// Complexity: O(1).
func Dimensions(n int) (rows, cols int, err error) {
	if err = validateVariables(n); err != nil {
		return 0, 0, err
	}
	a, b := splitBits(n)

	return 1 << uint(a), 1 << uint(b), nil
}

// BuildMatrix returns the symmetry-diagram matrix for n variables.
//
// The a = ⌈n/2⌉ row bits and b = ⌊n/2⌋ column bits are each enumerated in
// Gray order; cell [i][j] holds the n-bit vector merged from the i-th row
// code and the j-th column code (see Layout). BuildMatrix(0) is a 1×1
// matrix holding an empty vector.
//
// Returns ErrInvalidVariables if n < 0 or n > MaxVariables.
// Complexity: O(n·2^n) time and memory.
func BuildMatrix(n int, opts ...Option) (Matrix, error) {
	if err := validateVariables(n); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	a, b := splitBits(n)

	rowCodes, err := gray.Sequence(a)
	if err != nil {
		return nil, err
	}
	colCodes, err := gray.Sequence(b)
	if err != nil {
		return nil, err
	}

	m := make(Matrix, len(rowCodes))
	for i, ca := range rowCodes {
		row := make([]BitVector, len(colCodes))
		for j, cb := range colCodes {
			full := combine(o.layout, ca, cb)
			vec := make(BitVector, len(full))
			for k := 0; k < len(full); k++ {
				vec[k] = int(full[k] - '0')
			}
			row[j] = vec
		}
		m[i] = row
	}

	return m, nil
}
