package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/config"
	"github.com/wildstyl3r/rootfind/internal/solver"
)

var errNoConvergence = errors.New("no method found a root")

type compareOptions struct {
	*globalOptions
	configFile string
	traceDir   string
}

func newCompareCommand(global *globalOptions) *cobra.Command {
	opts := &compareOptions{globalOptions: global}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare all methods on the parachutist problem",
		Long: `Finds the mass at which a falling body reaches the target velocity
after the given time, with every method, and reports the one needing the
fewest iterations. Without --config the reference problem is solved.`,
		Args: cobra.NoArgs,
		RunE: opts.run,
	}
	cmd.Flags().StringVar(&opts.configFile, "config", "", "TOML problem description")
	cmd.Flags().StringVar(&opts.traceDir, "trace", "", "directory for the step trace CSV (overrides TraceDir)")
	return cmd
}

func (o *compareOptions) run(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.LoadConfig(o.configFile); err != nil {
			return err
		}
	}
	if o.traceDir != "" {
		cfg.TraceDir = o.traceDir
	}

	report := compare.Run(compare.FromConfig(cfg))
	for _, outcome := range report.Outcomes {
		for _, s := range outcome.Steps {
			logStep(o.logger, s)
		}
		if outcome.Err != nil {
			o.logger.Warn("method failed", "run", report.ID, "method", outcome.Method, "err", outcome.Err)
			continue
		}
		o.logger.Debug("method finished", "run", report.ID, "method", outcome.Method,
			"state", outcome.Result.State, "iterations", outcome.Result.Iterations)
	}

	if cfg.TraceDir != "" {
		path, err := report.WriteTrace(cfg.TraceDir)
		if err != nil {
			return err
		}
		o.logger.Info("trace written", "run", report.ID, "path", path)
	}

	best, ok := report.Best()
	v := cfg.Velocity()
	speed := func(m float64) float64 { return cfg.FromSI(v.VelocityAt(m), config.VelocityDimension) }
	renderReport(cmd.OutOrStdout(), report, speed, cfg.UnitLabel(config.VelocityDimension), best, ok)
	if !ok {
		return errNoConvergence
	}
	return nil
}

func logStep(logger *slog.Logger, s solver.Step) {
	logger.Debug("step", "method", s.Method, "k", s.Iteration,
		"a", s.Lower, "b", s.Upper, "x", s.X, "fx", s.FX, "dfx", s.DFX)
}
