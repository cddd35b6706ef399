// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symdiag/symmetry"
)

// streams bundles the process I/O so commands can run against buffers.
type streams struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool // stdin is a terminal
	outTerminal bool // stdout is a terminal
}

type options struct {
	streams

	configPath string
	envFile    string
	layoutName string
	output     string
	debug      bool

	logger *logrus.Logger
	layout symmetry.Layout
	format string
}

func newRootCmd(s streams, logger *logrus.Logger) *cobra.Command {
	o := &options{streams: s, logger: logger}

	cmd := &cobra.Command{
		Use:   "symdiag",
		Short: "Gray codes and symmetry-diagram (Karnaugh map) layouts",
		Long: `symdiag builds the row/column layout of a symmetry diagram (Karnaugh map).

Run without a subcommand to read the number of variables from standard input
and print the matrix of cell bit-vectors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.complete(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := readVariables(o.in, o.out, o.interactive)
			if err != nil {
				return err
			}
			return o.runMatrix(n)
		},
	}
	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.errOut)

	cmd.PersistentFlags().StringVar(&o.configPath, "config", defaultConfigPath, "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&o.envFile, "env-file", defaultEnvFile, "dotenv file with SYMDIAG_* overrides")
	cmd.PersistentFlags().StringVar(&o.layoutName, "layout", symmetry.DefaultLayout.String(), "cell layout: concatenated or interleaved (kv)")
	cmd.PersistentFlags().StringVarP(&o.output, "output", "o", outputText, "output format: text, pretty, auto, yaml or json")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(
		newMatrixCmd(o),
		newLocateCmd(o),
		newGrayCmd(o),
		newDiagramCmd(o),
	)

	return cmd
}

// complete resolves config file, environment and flags into o.layout and
// o.format and configures the logger.
func (o *options) complete(cmd *cobra.Command) error {
	lookup, err := envLookup(o.envFile)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o.configPath, cmd.Flags().Changed("config"), lookup)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout = o.layoutName
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = o.output
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = o.debug
	}

	if cfg.Debug {
		o.logger.SetLevel(logrus.DebugLevel)
	} else {
		o.logger.SetLevel(logrus.WarnLevel)
	}

	if o.layout, err = cfg.layout(); err != nil {
		return err
	}
	if o.format, err = cfg.format(o.outTerminal); err != nil {
		return err
	}
	o.logger.WithFields(logrus.Fields{
		"layout": o.layout.String(),
		"output": o.format,
		"config": o.configPath,
	}).Debug("configuration resolved")

	return nil
}

func (o *options) renderer() renderer {
	return renderer{w: o.out, format: o.format}
}
