// Package symmetry lays out a Boolean truth table as a symmetry diagram
// (Karnaugh map) and maps truth-table indices to diagram cells.
//
// What:
//
//   - BuildMatrix(n) splits n variables into a = ⌈n/2⌉ row bits and
//     b = ⌊n/2⌋ column bits, orders rows and columns by Gray code and returns
//     the 2^a × 2^b matrix of n-bit vectors.
//   - Locate(d, n) scans that matrix for the cell whose bit-vector, read as
//     binary with the most-significant bit first, equals d.
//   - PositionOf(d, n) answers the same question in O(n) by Gray-decoding the
//     row and column bits of d.
//   - NewDiagram(n, values) places the values of a truth table into their
//     cells; Diagram.Neighbors reports the wraparound-adjacent cells.
//
// Layouts:
//
//   - Concatenated (default): the cell bit-vector is rowCode ++ colCode, so
//     the first ⌈n/2⌉ variables label the rows.
//   - Interleaved: row and column bits alternate, starting with a row bit.
//     This is the classic KV-diagram labelling (A top, B left, C bottom,
//     D right for four variables).
//
// Example, n = 4, Concatenated (cell shows its decimal index):
//
//	      00  01  11  10
//	00     0   1   3   2
//	01     4   5   7   6
//	11    12  13  15  14
//	10     8   9  11  10
//
// Complexity:
//
//   - BuildMatrix: O(n·2^n) time and memory.
//   - Locate:      O(n·2^n) (one build, one scan).
//   - PositionOf:  O(n).
//   - NewDiagram:  O(n·2^n).
//
// Errors:
//
//   - ErrInvalidVariables: n < 0 or n > MaxVariables.
//   - ErrInvalidIndex:     negative decimal index.
//   - ErrIndexOutOfRange:  index ≥ 2^n where a position is mandatory.
//   - ErrOutOfRange:       position outside the matrix or diagram.
//   - ErrTruthTableSize:   truth table length is not 2^n.
//   - ErrBadValue:         unparsable truth-table value.
//   - ErrUnknownLayout:    unknown layout name.
//
// A Locate miss is not an error: it returns ok == false.
package symmetry
