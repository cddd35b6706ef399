// Package symdiag is a small toolkit for reflected binary (Gray) codes and the
// cell layout of symmetry diagrams, better known as Karnaugh maps.
//
// 🚀 What is symdiag?
//
//	A dependency-light library plus a CLI that brings together:
//		• Gray codes: iterative sequences, Encode/Decode, Hamming distance
//		• Matrix layout: the 2^⌈n/2⌉ × 2^⌊n/2⌋ grid of cell bit-vectors
//		• Lookup: linear Locate and closed-form PositionOf
//		• Diagrams: truth tables placed on the grid, with toroidal neighbors
//
// ✨ Why choose symdiag?
//
//   - Adjacent cells always differ in exactly one bit, wrap-around included
//   - Two layouts: Concatenated (row code ++ column code) and Interleaved
//     (row and column bits alternate, the textbook KV convention)
//   - Sentinel errors throughout, checkable with errors.Is
//
// Packages:
//
//	gray/         — reflected binary code generation and conversion
//	symmetry/     — matrix construction, index lookup, truth-table diagrams
//	cmd/symdiag/  — cobra CLI: matrix, locate, gray and diagram commands
//
// Quick ASCII example (n = 2):
//
//	        B=0     B=1
//	A=0   [0, 0]  [0, 1]
//	A=1   [1, 0]  [1, 1]
//
//	go install github.com/katalvlaran/symdiag/cmd/symdiag@latest
package symdiag
