// SPDX-License-Identifier: MIT

// Command symdiag prints Gray codes and symmetry-diagram (Karnaugh map)
// layouts for a number of Boolean variables.
//
// Without a subcommand it reads the variable count from standard input and
// prints the matrix:
//
//	$ echo 2 | symdiag
//	Matrix size: 2 x 2
//	[0, 0] [0, 1]
//	[1, 0] [1, 1]
package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	env := streams{
		in:          os.Stdin,
		out:         os.Stdout,
		errOut:      os.Stderr,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		outTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	}

	if err := newRootCmd(env, logger).Execute(); err != nil {
		logger.WithError(err).Error("symdiag failed")
		os.Exit(1)
	}
}
