package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wildstyl3r/rootfind/internal/expr"
	"github.com/wildstyl3r/rootfind/internal/solver"
)

var errUnknownMethod = errors.New("unknown method")

var methodAliases = map[string]solver.Method{
	"bisection":      solver.MethodBisection,
	"false-position": solver.MethodFalsePosition,
	"regula-falsi":   solver.MethodFalsePosition,
	"newton":         solver.MethodNewtonRaphson,
	"newton-raphson": solver.MethodNewtonRaphson,
	"stochastic":     solver.MethodStochastic,
}

type solveOptions struct {
	*globalOptions
	expression    string
	derivative    string
	lower, upper  float64
	guess         float64
	slope         float64
	seed          int64
	epsilon       float64
	maxIterations int
}

func newSolveCommand(global *globalOptions) *cobra.Command {
	opts := &solveOptions{globalOptions: global}
	cmd := &cobra.Command{
		Use:   "solve <bisection|false-position|newton|stochastic>",
		Short: "Solve f(x) = 0 with one method",
		Long: `Solves an expression in x. Bracketing methods need --lower and --upper,
Newton-Raphson needs --guess and uses a numeric derivative unless --deriv
is given. Stochastic approximation keeps its iterates within the bracket,
starts from --guess (default: the midpoint) and estimates --slope by the
secant over the bracket when it is not given.`,
		Example: `  rootfind solve bisection --expr "x**2 - 2" --lower 0 --upper 2
  rootfind solve newton --expr "exp(x) - 3" --deriv "exp(x)" --guess 1
  rootfind solve stochastic --expr "x - 2" --lower 0 --upper 5 --eps 1e-3`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bisection", "false-position", "newton", "stochastic"},
		RunE:      opts.run,
	}
	f := cmd.Flags()
	f.StringVar(&opts.expression, "expr", "", "function of x")
	f.StringVar(&opts.derivative, "deriv", "", "derivative of --expr (newton only)")
	f.Float64Var(&opts.lower, "lower", 0, "lower end of the bracket")
	f.Float64Var(&opts.upper, "upper", 0, "upper end of the bracket")
	f.Float64Var(&opts.guess, "guess", 0, "initial guess (newton, stochastic)")
	f.Float64Var(&opts.slope, "slope", 0, "estimate of f' near the root (stochastic only)")
	f.Int64Var(&opts.seed, "seed", 1, "random seed (stochastic only)")
	f.Float64Var(&opts.epsilon, "eps", solver.DefaultEpsilon, "stop when |f(x)| < eps")
	f.IntVar(&opts.maxIterations, "max-iter", solver.DefaultMaxIterations, "iteration budget")
	_ = cmd.MarkFlagRequired("expr")
	return cmd
}

func (o *solveOptions) run(cmd *cobra.Command, args []string) error {
	method, ok := methodAliases[args[0]]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownMethod, args[0])
	}

	fn, err := expr.Compile(o.expression)
	if err != nil {
		return err
	}
	if method == solver.MethodStochastic && !cmd.Flags().Changed("guess") {
		o.guess = (o.lower + o.upper) / 2
	}
	s, deriv, err := o.build(method, fn)
	if err != nil {
		return err
	}

	result, err := s.Solve()
	// An evaluation failure surfaces as NaN inside the solver, so it
	// explains any solver error that follows.
	for _, e := range []*expr.Function{fn, deriv} {
		if e != nil && e.Err() != nil {
			return e.Err()
		}
	}
	if err != nil {
		return err
	}
	o.logger.Debug("solved", "method", method, "state", result.State, "iterations", result.Iterations)

	renderResult(cmd.OutOrStdout(), method, fn.String(), result)
	return nil
}

// build returns the solver and, when given, the compiled derivative.
func (o *solveOptions) build(method solver.Method, fn *expr.Function) (solver.Solver, *expr.Function, error) {
	opts := []solver.Option{
		solver.WithEpsilon(o.epsilon),
		solver.WithMaxIterations(o.maxIterations),
		solver.WithObserver(func(s solver.Step) { logStep(o.logger, s) }),
	}

	switch method {
	case solver.MethodBisection:
		s, err := solver.NewBisection(fn.Func(), o.lower, o.upper, opts...)
		return s, nil, err
	case solver.MethodFalsePosition:
		s, err := solver.NewFalsePosition(fn.Func(), o.lower, o.upper, opts...)
		return s, nil, err
	case solver.MethodStochastic:
		slope := o.slope
		if slope == 0 {
			f := fn.Func()
			slope = (f(o.upper) - f(o.lower)) / (o.upper - o.lower)
		}
		s, err := solver.NewStochasticApproximation(fn.Func(), solver.StochasticParams{
			Lower: o.lower,
			Upper: o.upper,
			Guess: o.guess,
			Slope: slope,
			Seed:  o.seed,
		}, opts...)
		return s, nil, err
	}

	if o.derivative == "" {
		s, err := solver.NewNewtonRaphson(fn.Func(), expr.Derivative(fn.Func(), expr.DefaultStep), o.guess, opts...)
		return s, nil, err
	}
	deriv, err := expr.Compile(o.derivative)
	if err != nil {
		return nil, nil, err
	}
	s, err := solver.NewNewtonRaphson(fn.Func(), deriv.Func(), o.guess, opts...)
	return s, deriv, err
}
