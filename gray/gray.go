// SPDX-License-Identifier: MIT
// Package: symdiag/gray
//
// gray.go — reflected binary code generation and conversions.

package gray

import (
	"fmt"
	"strings"
)

// MaxWidth is the largest bit width accepted by Sequence and Codes.
// 2^24 codes is already far beyond any diagram a person can read.
const MaxWidth = 24

// Encode returns the reflected binary Gray code of v.
// Complexity: O(1).
func Encode(v uint64) uint64 {
	return v ^ (v >> 1)
}

// Decode is the inverse of Encode: it returns the linear binary value whose
// Gray code is g. Each output bit is the XOR of all input bits at or above it.
// Complexity: O(log 64).
func Decode(g uint64) uint64 {
	g ^= g >> 32
	g ^= g >> 16
	g ^= g >> 8
	g ^= g >> 4
	g ^= g >> 2
	g ^= g >> 1

	return g
}

// validateWidth enforces 0 ≤ bits ≤ MaxWidth.
func validateWidth(bits int) error {
	if bits < 0 || bits > MaxWidth {
		return fmt.Errorf("width %d: %w", bits, ErrInvalidWidth)
	}

	return nil
}

// Codes returns the 2^bits Gray codes of the given width as integers, in
// reflected-binary order. Codes(0) returns a single zero code.
// Returns ErrInvalidWidth if bits < 0 or bits > MaxWidth.
// Complexity: O(2^bits) time and memory.
func Codes(bits int) ([]uint64, error) {
	if err := validateWidth(bits); err != nil {
		return nil, err
	}
	size := uint64(1) << uint(bits)
	out := make([]uint64, size)
	for i := uint64(0); i < size; i++ {
		out[i] = Encode(i)
	}

	return out, nil
}

// Sequence returns the ordered sequence of 2^bits bit-strings of length bits
// in standard reflected-binary order. Sequence(0) returns [""].
//
// The order equals the recursive construction (prefix "0" to the width-1
// sequence, then "1" to its reverse) but is built iteratively.
//
// Returns ErrInvalidWidth if bits < 0 or bits > MaxWidth.
// Complexity: O(bits·2^bits) time and memory.
func Sequence(bits int) ([]string, error) {
	codes, err := Codes(bits)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = Format(c, bits)
	}

	return out, nil
}

// Format renders the low bits of code as a bit-string of exactly bits
// characters, most-significant bit first. Higher bits of code are ignored.
// Format(x, 0) is the empty string.
func Format(code uint64, bits int) string {
	if bits <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(bits)
	for i := bits - 1; i >= 0; i-- {
		if code>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Distance returns the Hamming distance between two bit-strings of equal
// length. Adjacent entries of a Gray sequence always have distance 1.
// Returns ErrLengthMismatch or ErrNotBinary on malformed input.
// Complexity: O(len(a)).
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%q vs %q: %w", a, b, ErrLengthMismatch)
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if !isBit(a[i]) || !isBit(b[i]) {
			return 0, fmt.Errorf("%q vs %q: %w", a, b, ErrNotBinary)
		}
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}

func isBit(c byte) bool { return c == '0' || c == '1' }
