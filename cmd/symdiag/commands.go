// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symdiag/gray"
	"github.com/katalvlaran/symdiag/symmetry"
)

var errNotFound = errors.New("symdiag: no cell holds the index")

func newMatrixCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <n>",
		Short: "Print the symmetry-diagram matrix for n variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			return o.runMatrix(n)
		},
	}
}

func (o *options) runMatrix(n int) error {
	log := o.logger.WithField("variables", n)
	m, err := symmetry.BuildMatrix(n, symmetry.WithLayout(o.layout))
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	log.WithFields(logrus.Fields{"rows": m.Rows(), "cols": m.Cols()}).Debug("matrix built")

	return o.renderer().matrix(m, n, o.layout)
}

func newLocateCmd(o *options) *cobra.Command {
	var closedForm bool

	cmd := &cobra.Command{
		Use:   "locate <index> <n>",
		Short: "Find the cell of a truth-table index",
		Long: `locate prints the [row, col] cell whose bit-vector equals the decimal index.

An index outside [0, 2^n-1] prints "not found" and exits non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseCount(args[0])
			if err != nil {
				return err
			}
			n, err := parseCount(args[1])
			if err != nil {
				return err
			}
			return o.runLocate(index, n, closedForm)
		},
	}
	cmd.Flags().BoolVar(&closedForm, "closed-form", false, "compute the cell by Gray decoding instead of scanning the matrix")

	return cmd
}

func (o *options) runLocate(index, n int, closedForm bool) error {
	log := o.logger.WithFields(logrus.Fields{"index": index, "variables": n, "closed_form": closedForm})

	var (
		pos symmetry.Position
		ok  bool
		err error
	)
	if closedForm {
		pos, err = symmetry.PositionOf(index, n, symmetry.WithLayout(o.layout))
		ok = err == nil
		if errors.Is(err, symmetry.ErrIndexOutOfRange) {
			err = nil
		}
	} else {
		pos, ok, err = symmetry.Locate(index, n, symmetry.WithLayout(o.layout))
	}
	if err != nil {
		return fmt.Errorf("locate: %w", err)
	}
	log.WithField("found", ok).Debug("lookup finished")

	if err := o.renderer().position(index, n, o.layout, pos, ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("locate %d in %d variables: %w", index, n, errNotFound)
	}

	return nil
}

func newGrayCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gray <bits>",
		Short: "Print the reflected binary code of the given width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := parseCount(args[0])
			if err != nil {
				return err
			}
			seq, err := gray.Sequence(bits)
			if err != nil {
				return fmt.Errorf("gray: %w", err)
			}
			o.logger.WithFields(logrus.Fields{"bits": bits, "codes": len(seq)}).Debug("sequence generated")

			return o.renderer().sequence(bits, seq)
		},
	}
}

func newDiagramCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "diagram <n> <values>",
		Short: "Lay out a truth table as a symmetry diagram",
		Long: `diagram places the 2^n truth-table outputs into their diagram cells.

Values are read in truth-table order: 0, 1, and -, x or X for don't-care.
Commas and spaces are ignored, so "0110" and "0,1,1,0" are equivalent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			values, err := symmetry.ParseValues(args[1])
			if err != nil {
				return fmt.Errorf("diagram: %w", err)
			}
			d, err := symmetry.NewDiagram(n, values, symmetry.WithLayout(o.layout))
			if err != nil {
				return fmt.Errorf("diagram: %w", err)
			}
			o.logger.WithFields(logrus.Fields{
				"variables": n,
				"minterms":  len(d.Minterms()),
				"dont_care": len(d.DontCares()),
			}).Debug("diagram built")

			return o.renderer().diagram(d)
		},
	}
}
