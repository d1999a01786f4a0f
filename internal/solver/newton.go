package solver

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/rootfind/internal/utils"
)

// NewtonRaphson iterates x <- x - f(x)/df(x) from an initial guess.
// Near a simple root of a smooth function convergence is quadratic, but
// nothing guards against overshoot, divergence or cycling.
type NewtonRaphson struct {
	f     Func
	df    Func
	guess float64
	opts  Options
}

func NewNewtonRaphson(f, df Func, guess float64, opts ...Option) (*NewtonRaphson, error) {
	if f == nil || df == nil {
		return nil, fmt.Errorf("%s: %w", MethodNewtonRaphson, ErrNilFunction)
	}
	if !utils.IsFinite(guess) {
		return nil, fmt.Errorf("%s: initial guess %g: %w", MethodNewtonRaphson, guess, ErrBadOptions)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNewtonRaphson, err)
	}
	return &NewtonRaphson{f: f, df: df, guess: guess, opts: o}, nil
}

func (n *NewtonRaphson) Method() Method {
	return MethodNewtonRaphson
}

func (n *NewtonRaphson) Options() Options {
	return n.opts
}

func (n *NewtonRaphson) Solve() (Result, error) {
	x := n.guess
	for k := 1; k <= n.opts.MaxIterations; k++ {
		fx := n.f(x)
		if math.Abs(fx) < n.opts.Epsilon {
			n.observe(k, x, fx, math.NaN())
			return newResult(x, k, Converged), nil
		}

		dfx := n.df(x)
		n.observe(k, x, fx, dfx)
		if dfx == 0 {
			return Result{State: Failed}, &SolveError{Method: MethodNewtonRaphson, Iteration: k, X: x, Err: ErrZeroDerivative}
		}
		x -= fx / dfx
	}
	return newResult(x, n.opts.MaxIterations, Exhausted), nil
}

func (n *NewtonRaphson) observe(k int, x, fx, dfx float64) {
	if n.opts.Observer == nil {
		return
	}
	n.opts.Observer(Step{
		Method:    MethodNewtonRaphson,
		Iteration: k,
		Lower:     math.NaN(),
		Upper:     math.NaN(),
		FLower:    math.NaN(),
		FUpper:    math.NaN(),
		X:         x,
		FX:        fx,
		DFX:       dfx,
	})
}
