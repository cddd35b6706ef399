// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symdiag/gray"
	"github.com/katalvlaran/symdiag/symmetry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	plainStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	trueStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dontCareStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderer writes command results in one of the output formats.
type renderer struct {
	w      io.Writer
	format string
}

type matrixDoc struct {
	Variables int                    `json:"variables" yaml:"variables"`
	Layout    string                 `json:"layout" yaml:"layout"`
	Rows      int                    `json:"rows" yaml:"rows"`
	Cols      int                    `json:"cols" yaml:"cols"`
	Cells     [][]symmetry.BitVector `json:"cells" yaml:"cells"`
}

type positionDoc struct {
	Index     int                `json:"index" yaml:"index"`
	Variables int                `json:"variables" yaml:"variables"`
	Layout    string             `json:"layout" yaml:"layout"`
	Found     bool               `json:"found" yaml:"found"`
	Position  *symmetry.Position `json:"position,omitempty" yaml:"position,omitempty"`
}

type sequenceDoc struct {
	Bits  int      `json:"bits" yaml:"bits"`
	Codes []string `json:"codes" yaml:"codes"`
}

type diagramDoc struct {
	Variables    int               `json:"variables" yaml:"variables"`
	Layout       string            `json:"layout" yaml:"layout"`
	RowVariables string            `json:"row_variables" yaml:"row_variables"`
	ColVariables string            `json:"col_variables" yaml:"col_variables"`
	Cells        [][]symmetry.Cell `json:"cells" yaml:"cells"`
	Minterms     []int             `json:"minterms" yaml:"minterms"`
	DontCares    []int             `json:"dont_cares" yaml:"dont_cares"`
}

// encode handles the structured formats; it reports false for text formats.
func (r renderer) encode(doc any) (bool, error) {
	switch r.format {
	case outputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(doc)
	case outputYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// matrix prints the symmetry matrix. The text format is:
//
//	Matrix size: {rows} x {cols}
//	[0, 0] [0, 1]
//	...
func (r renderer) matrix(m symmetry.Matrix, n int, l symmetry.Layout) error {
	if done, err := r.encode(matrixDoc{
		Variables: n, Layout: l.String(), Rows: m.Rows(), Cols: m.Cols(), Cells: m,
	}); done {
		return err
	}

	cells := make([][]string, m.Rows())
	for i, row := range m {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = v.String()
		}
	}

	if r.format == outputPretty {
		rowVars, colVars := symmetry.Axes(n, l)
		title := fmt.Sprintf("Matrix size: %d x %d  (%s, rows %s / cols %s)",
			m.Rows(), m.Cols(), l, symmetry.AxisLabel(rowVars), symmetry.AxisLabel(colVars))
		grid, err := prettyGrid(n, cells, func(int, int) lipgloss.Style { return plainStyle })
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.w, titleStyle.Render(title)+"\n"+grid)
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix size: %d x %d\n", m.Rows(), m.Cols())
	for _, row := range cells {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.w, sb.String())

	return err
}

// position prints a Locate result: "[row, col]" or "not found".
func (r renderer) position(index, n int, l symmetry.Layout, p symmetry.Position, ok bool) error {
	doc := positionDoc{Index: index, Variables: n, Layout: l.String(), Found: ok}
	if ok {
		doc.Position = &p
	}
	if done, err := r.encode(doc); done {
		return err
	}
	if !ok {
		_, err := fmt.Fprintln(r.w, "not found")
		return err
	}
	if r.format == outputPretty {
		_, err := fmt.Fprintf(r.w, "%s %s\n", headerStyle.Render(fmt.Sprintf("%d →", index)), titleStyle.Render(p.String()))
		return err
	}
	_, err := fmt.Fprintln(r.w, p.String())

	return err
}

// sequence prints one Gray code per line.
func (r renderer) sequence(bits int, seq []string) error {
	if done, err := r.encode(sequenceDoc{Bits: bits, Codes: seq}); done {
		return err
	}
	width := len(fmt.Sprint(len(seq) - 1))
	for i, code := range seq {
		var err error
		if r.format == outputPretty {
			_, err = fmt.Fprintf(r.w, "%s %s\n", headerStyle.Render(runewidth.FillLeft(fmt.Sprint(i), width)), titleStyle.Render(code))
		} else {
			_, err = fmt.Fprintln(r.w, code)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// diagram prints a truth table laid out on the symmetry grid. Each cell shows
// its value and, after a slash, the octal index of its truth-table row.
func (r renderer) diagram(d *symmetry.Diagram) error {
	rowVars, colVars := symmetry.Axes(d.Variables, d.Layout)
	table := d.Cells()
	if done, err := r.encode(diagramDoc{
		Variables:    d.Variables,
		Layout:       d.Layout.String(),
		RowVariables: symmetry.AxisLabel(rowVars),
		ColVariables: symmetry.AxisLabel(colVars),
		Cells:        table,
		Minterms:     d.Minterms(),
		DontCares:    d.DontCares(),
	}); done {
		return err
	}

	cells := make([][]string, d.Rows())
	for i, row := range table {
		cells[i] = make([]string, len(row))
		for j, c := range row {
			oct, err := symmetry.Octal(c.Index)
			if err != nil {
				return err
			}
			cells[i][j] = c.Value.String() + "/" + oct
		}
	}

	title := fmt.Sprintf("%s \\ %s", symmetry.AxisLabel(rowVars), symmetry.AxisLabel(colVars))
	if r.format == outputPretty {
		grid, err := prettyGrid(d.Variables, cells, func(i, j int) lipgloss.Style {
			switch table[i][j].Value {
			case symmetry.True:
				return trueStyle
			case symmetry.DontCare:
				return dontCareStyle
			default:
				return plainStyle
			}
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.w, titleStyle.Render(title)+"\n"+grid)
		return err
	}

	grid, err := plainGrid(d.Variables, title, cells)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, grid)

	return err
}

// axisCodes returns the Gray labels of the row and column axes.
func axisCodes(n int) (rows, cols []string, err error) {
	a, b := (n+1)/2, n/2
	if rows, err = gray.Sequence(a); err != nil {
		return nil, nil, fmt.Errorf("row labels: %w", err)
	}
	if cols, err = gray.Sequence(b); err != nil {
		return nil, nil, fmt.Errorf("column labels: %w", err)
	}

	return rows, cols, nil
}

// cellWidth is the widest display width among cells and labels.
func cellWidth(cells [][]string, labels ...[]string) int {
	w := 1
	for _, row := range cells {
		for _, c := range row {
			if cw := runewidth.StringWidth(c); cw > w {
				w = cw
			}
		}
	}
	for _, ls := range labels {
		for _, l := range ls {
			if lw := runewidth.StringWidth(l); lw > w {
				w = lw
			}
		}
	}

	return w
}

// plainGrid lays out cells under Gray-coded column labels with Gray-coded
// row labels on the left, padded to equal display width.
func plainGrid(n int, corner string, cells [][]string) (string, error) {
	rowCodes, colCodes, err := axisCodes(n)
	if err != nil {
		return "", err
	}
	w := cellWidth(cells, colCodes)
	lw := runewidth.StringWidth(corner)
	for _, rc := range rowCodes {
		if rw := runewidth.StringWidth(rc); rw > lw {
			lw = rw
		}
	}

	var sb strings.Builder
	sb.WriteString(runewidth.FillRight(corner, lw))
	for _, cc := range colCodes {
		sb.WriteString("  " + runewidth.FillLeft(cc, w))
	}
	sb.WriteByte('\n')
	for i, row := range cells {
		sb.WriteString(runewidth.FillRight(rowCodes[i], lw))
		for _, c := range row {
			sb.WriteString("  " + runewidth.FillLeft(c, w))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// prettyGrid is plainGrid with per-cell styles inside a rounded frame.
func prettyGrid(n int, cells [][]string, style func(i, j int) lipgloss.Style) (string, error) {
	rowCodes, colCodes, err := axisCodes(n)
	if err != nil {
		return "", err
	}
	w := cellWidth(cells, colCodes)
	lw := cellWidth(nil, rowCodes)

	lines := make([]string, 0, len(cells)+1)
	header := []string{runewidth.FillRight("", lw)}
	for _, cc := range colCodes {
		header = append(header, headerStyle.Render(runewidth.FillLeft(cc, w)))
	}
	lines = append(lines, strings.Join(header, "  "))
	for i, row := range cells {
		parts := []string{headerStyle.Render(runewidth.FillRight(rowCodes[i], lw))}
		for j, c := range row {
			parts = append(parts, style(i, j).Render(runewidth.FillLeft(c, w)))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	return frameStyle.Render(strings.Join(lines, "\n")), nil
}
