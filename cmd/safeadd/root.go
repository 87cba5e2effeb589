package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hnimtadd/safesum"
	"github.com/hnimtadd/safesum/arith"
	"github.com/hnimtadd/safesum/logger"
	"github.com/hnimtadd/safesum/trace"
)

const formatAuto = "auto"

type rootFlags struct {
	logLevel  string
	logFormat string
	trace     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "safeadd",
		Short: "Add three integers from stdin with overflow detection",
		Long: `safeadd reads three whitespace-separated integers from standard input,
adds them as 32-bit signed integers and prints the sum.

On overflow the sum is clamped to 2147483647, still printed, and the
command exits with status 3.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSafeAdd(cmd, flags)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.Flags().StringVar(&flags.logLevel, "log-level", "warn",
		"Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", formatAuto,
		"Log format: auto, text or json (auto picks text on a terminal)")
	cmd.Flags().BoolVar(&flags.trace, "trace", false,
		"Print every step of the addition to stderr")

	return cmd
}

func runSafeAdd(cmd *cobra.Command, flags *rootFlags) error {
	log, err := newLogger(flags, cmd.ErrOrStderr())
	if err != nil {
		return usageError(err)
	}

	var recorder trace.Recorder[int32]
	opts := safesum.Options{
		Operands: safesum.DefaultOperands,
		Logger:   log,
	}
	if flags.trace {
		opts.Observer = recorder.Observe
	}

	outcome, err := safesum.New(opts).Run(cmd.InOrStdin())
	if err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("read stdin: %w", err)}
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), outcome.Sum); err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("write sum: %w", err)}
	}

	if flags.trace {
		if err := recorder.Render(cmd.ErrOrStderr()); err != nil {
			log.Warn("rendering trace failed", "error", err)
		}
	}

	if outcome.Result == arith.Overflow {
		return &exitError{code: exitDataOverflow, err: outcome.Result.Err()}
	}
	return nil
}

func newLogger(flags *rootFlags, out io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(flags.logLevel)
	if err != nil {
		return nil, err
	}

	format := logger.TypeJSON
	if flags.logFormat == formatAuto {
		if isTerminal(out) {
			format = logger.TypeText
		}
	} else if format, err = logger.ParseType(flags.logFormat); err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Buffer: out,
		Level:  level,
		Type:   format,
	})
	log.Debug("logger configured", "level", flags.logLevel, "format", format.String())
	return log, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
