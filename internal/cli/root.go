// Package cli wires the solvers into the rootfind command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	verbose bool
	logger  *slog.Logger
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{logger: newLogger(io.Discard, false)}

	root := &cobra.Command{
		Use:   "rootfind",
		Short: "Nonlinear equation solvers",
		Long: `rootfind solves f(x) = 0 with bisection, false position and
Newton-Raphson, and compares how many iterations each method needs.

Commands:
  compare  - run all methods on the parachutist problem
  solve    - run one method on an arbitrary expression in x`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every solver step")

	root.AddCommand(newCompareCommand(opts), newSolveCommand(opts))
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
