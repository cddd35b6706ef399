// Package gray generates reflected binary (Gray) code sequences.
//
// What:
//
//   - Sequence(k) returns all 2^k bit-strings of length k in reflected-binary
//     order: "00", "01", "11", "10" for k=2.
//   - Codes(k) returns the same ordering as unsigned integers.
//   - Encode / Decode convert between a linear binary value and its Gray code.
//   - Distance reports the Hamming distance of two equal-length bit-strings.
//
// Why:
//
//   - Karnaugh maps (symmetry diagrams) order their rows and columns by Gray
//     code so that neighbouring cells differ in exactly one variable.
//   - Rotary encoders, counters and error-tolerant indexing use the same
//     single-bit-change property.
//
// Construction:
//
//	The textbook definition is recursive: prefix every code of width k-1 with
//	"0", then prefix the reversed sequence with "1". The i-th element of that
//	sequence is exactly i XOR (i >> 1), so Sequence builds the result
//	iteratively in one pass with no recursion.
//
// Complexity:
//
//   - Sequence: O(k·2^k) time and memory.
//   - Codes:    O(2^k) time and memory.
//   - Encode:   O(1). Decode: O(log w) for a w-bit word.
//
// Errors:
//
//   - ErrInvalidWidth:   bit width is negative or above MaxWidth.
//   - ErrLengthMismatch: Distance called on strings of different length.
//   - ErrNotBinary:      Distance called on a string with a rune other than 0/1.
package gray
