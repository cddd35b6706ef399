// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// diagram.go — a truth table laid out on the symmetry-diagram grid.
//
// The grid is a torus: the first and last rows (and columns) are adjacent,
// because their Gray codes differ in a single bit.

package symmetry

import (
	"fmt"
	"strings"
)

// Value is a truth-table output: False, True or DontCare.
type Value int8

const (
	// False is a 0 output.
	False Value = iota
	// True is a 1 output.
	True
	// DontCare is an unspecified output, written "-".
	DontCare
)

// String returns "0", "1" or "-".
func (v Value) String() string {
	switch v {
	case False:
		return "0"
	case True:
		return "1"
	default:
		return "-"
	}
}

// MarshalText renders the value for JSON and YAML encoders.
func (v Value) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseValues reads a truth-table column such as "0110" or "1,0,-,1".
// Accepted symbols: '0', '1', and '-', 'x', 'X' for don't-care.
// Whitespace and commas are ignored. Returns ErrBadValue otherwise.
func ParseValues(s string) ([]Value, error) {
	out := make([]Value, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, False)
		case '1':
			out = append(out, True)
		case '-', 'x', 'X':
			out = append(out, DontCare)
		case ' ', '\t', '\n', '\r', ',':
		default:
			return nil, fmt.Errorf("%q at offset %d: %w", r, i, ErrBadValue)
		}
	}

	return out, nil
}

// Cell is one diagram field: the truth-table row it shows and its output.
type Cell struct {
	Index int   `json:"index" yaml:"index"`
	Value Value `json:"value" yaml:"value"`
}

// Diagram is a truth table arranged as a symmetry diagram. It is immutable
// once built; Cells returns a copy of the grid.
type Diagram struct {
	Variables int
	Layout    Layout

	cells           [][]Cell
	positions       []Position // truth-table index → cell
	neighborOffsets [][2]int
}

// NewDiagram places values[i] into the cell of truth-table index i.
// len(values) must be exactly 2^n.
//
// Returns ErrInvalidVariables for n outside [0, MaxVariables] and
// ErrTruthTableSize on a length mismatch.
// Complexity: O(n·2^n) time, O(2^n) memory.
func NewDiagram(n int, values []Value, opts ...Option) (*Diagram, error) {
	rows, cols, err := Dimensions(n)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("got %d values for n=%d (want %d): %w", len(values), n, rows*cols, ErrTruthTableSize)
	}
	o := gatherOptions(opts...)

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	positions := make([]Position, len(values))
	for i, v := range values {
		p, err := PositionOf(i, n, WithLayout(o.layout))
		if err != nil {
			return nil, err
		}
		cells[p.Row][p.Col] = Cell{Index: i, Value: v}
		positions[i] = p
	}

	return &Diagram{
		Variables:       n,
		Layout:          o.layout,
		cells:           cells,
		positions:       positions,
		neighborOffsets: [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	}, nil
}

// Rows returns the number of diagram rows.
func (d *Diagram) Rows() int { return len(d.cells) }

// Cols returns the number of diagram columns (0 for an empty diagram).
func (d *Diagram) Cols() int {
	if len(d.cells) == 0 {
		return 0
	}

	return len(d.cells[0])
}

// Cells returns a copy of the grid: Cells()[r][c] is the field in row r,
// column c.
func (d *Diagram) Cells() [][]Cell {
	out := make([][]Cell, len(d.cells))
	for r, row := range d.cells {
		out[r] = append([]Cell(nil), row...)
	}

	return out
}

// InBounds reports whether p lies inside the diagram.
func (d *Diagram) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < d.Rows() && p.Col >= 0 && p.Col < d.Cols()
}

// At returns the cell at p, or ErrOutOfRange.
func (d *Diagram) At(p Position) (Cell, error) {
	if !d.InBounds(p) {
		return Cell{}, fmt.Errorf("%v in %dx%d: %w", p, d.Rows(), d.Cols(), ErrOutOfRange)
	}

	return d.cells[p.Row][p.Col], nil
}

// PositionOf returns the cell holding truth-table row index.
// Returns ErrInvalidIndex or ErrIndexOutOfRange.
// Complexity: O(1).
func (d *Diagram) PositionOf(index int) (Position, error) {
	if index < 0 {
		return Position{}, fmt.Errorf("index=%d: %w", index, ErrInvalidIndex)
	}
	if index >= len(d.positions) {
		return Position{}, fmt.Errorf("index=%d, n=%d: %w", index, d.Variables, ErrIndexOutOfRange)
	}

	return d.positions[index], nil
}

// Neighbors returns the distinct cells orthogonally adjacent to p, with
// wraparound at the edges, in up/right/down/left order. Every neighbour's
// index differs from p's in exactly one bit. A 1-wide axis contributes no
// neighbours; a 2-wide axis contributes one.
// Returns ErrOutOfRange if p is outside the diagram.
func (d *Diagram) Neighbors(p Position) ([]Position, error) {
	if !d.InBounds(p) {
		return nil, fmt.Errorf("%v in %dx%d: %w", p, d.Rows(), d.Cols(), ErrOutOfRange)
	}
	rows, cols := d.Rows(), d.Cols()
	out := make([]Position, 0, len(d.neighborOffsets))
	for _, off := range d.neighborOffsets {
		q := Position{
			Row: (p.Row + off[0] + rows) % rows,
			Col: (p.Col + off[1] + cols) % cols,
		}
		if q == p || containsPosition(out, q) {
			continue
		}
		out = append(out, q)
	}

	return out, nil
}

// Minterms returns the truth-table indices whose value is True, ascending.
func (d *Diagram) Minterms() []int {
	return d.indicesWith(True)
}

// DontCares returns the truth-table indices whose value is DontCare, ascending.
func (d *Diagram) DontCares() []int {
	return d.indicesWith(DontCare)
}

func (d *Diagram) indicesWith(v Value) []int {
	var out []int
	for i, p := range d.positions {
		if d.cells[p.Row][p.Col].Value == v {
			out = append(out, i)
		}
	}

	return out
}

// String renders the values row by row, e.g. "01\n10".
func (d *Diagram) String() string {
	var sb strings.Builder
	for r, row := range d.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(c.Value.String())
		}
	}

	return sb.String()
}

func containsPosition(ps []Position, q Position) bool {
	for _, p := range ps {
		if p == q {
			return true
		}
	}

	return false
}
