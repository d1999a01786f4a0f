package solver

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/rootfind/internal/utils"
)

// candidateFunc picks the next trial point inside [lower, upper].
type candidateFunc func(f Func, lower, upper float64) float64

// bracketing is the loop shared by Bisection and FalsePosition; they differ
// only in next.
type bracketing struct {
	method Method
	next   candidateFunc
	f      Func
	lower  float64
	upper  float64
	opts   Options
}

func newBracketing(method Method, next candidateFunc, f Func, lower, upper float64, opts []Option) (bracketing, error) {
	if f == nil {
		return bracketing{}, fmt.Errorf("%s: %w", method, ErrNilFunction)
	}
	if !utils.IsFinite(lower) || !utils.IsFinite(upper) || !(lower < upper) {
		return bracketing{}, fmt.Errorf("%s: [%g, %g]: %w", method, lower, upper, ErrBadInterval)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return bracketing{}, fmt.Errorf("%s: %w", method, err)
	}
	return bracketing{
		method: method,
		next:   next,
		f:      f,
		lower:  lower,
		upper:  upper,
		opts:   o,
	}, nil
}

func (b *bracketing) Method() Method {
	return b.method
}

func (b *bracketing) Options() Options {
	return b.opts
}

func (b *bracketing) solve() (Result, error) {
	var (
		state        = Validating
		lower, upper = b.lower, b.upper
		x            float64
		k            int
	)
	for {
		switch state {
		case Validating:
			// NaN at an endpoint is no sign change either.
			if p := b.f(lower) * b.f(upper); !(p <= 0) {
				return Result{State: Failed}, &SolveError{Method: b.method, X: lower, Err: ErrInvalidBracket}
			}
			state = Iterating

		case Iterating:
			k++
			if k > b.opts.MaxIterations {
				state = Exhausted
				continue
			}
			x = b.next(b.f, lower, upper)
			fx := b.f(x)
			b.observe(k, lower, upper, x, fx)

			if math.Abs(fx) < b.opts.Epsilon {
				state = Converged
				continue
			}
			switch {
			case b.f(lower)*fx < 0:
				upper = x
			case b.f(upper)*fx < 0:
				lower = x
			default:
				return Result{State: Failed}, &SolveError{Method: b.method, Iteration: k, X: x, Err: ErrBracketMaintenance}
			}

		case Converged:
			return newResult(x, k, Converged), nil

		case Exhausted:
			return newResult(x, b.opts.MaxIterations, Exhausted), nil
		}
	}
}

func (b *bracketing) observe(k int, lower, upper, x, fx float64) {
	if b.opts.Observer == nil {
		return
	}
	b.opts.Observer(Step{
		Method:    b.method,
		Iteration: k,
		Lower:     lower,
		Upper:     upper,
		FLower:    b.f(lower),
		FUpper:    b.f(upper),
		X:         x,
		FX:        fx,
		DFX:       math.NaN(),
	})
}
