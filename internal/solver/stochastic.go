package solver

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/wildstyl3r/rootfind/internal/utils"
)

const DefaultWindow = 10

// StochasticParams configures the Robbins-Monro iteration.
type StochasticParams struct {
	// Iterates leaving [Lower, Upper] restart uniformly inside it.
	Lower, Upper float64
	Guess        float64
	// Slope estimates f' near the root; its sign must match.
	Slope float64
	// Window is the number of trailing iterates averaged into the result.
	// Zero means DefaultWindow.
	Window int
	Seed   int64
}

// StochasticApproximation finds a root of a function observed with noise:
//
//	x[k+1] = x[k] - f(x[k]) / (Slope * k)
//
// It converges once the last Window iterates lie within Epsilon of each
// other, so Epsilon bounds x, not |f(x)|. Solve is repeatable for a fixed
// Seed.
type StochasticApproximation struct {
	f      Func
	params StochasticParams
	opts   Options
}

func NewStochasticApproximation(f Func, p StochasticParams, opts ...Option) (*StochasticApproximation, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", MethodStochastic, ErrNilFunction)
	}
	if !utils.IsFinite(p.Lower) || !utils.IsFinite(p.Upper) || !(p.Lower < p.Upper) {
		return nil, fmt.Errorf("%s: [%g, %g]: %w", MethodStochastic, p.Lower, p.Upper, ErrBadInterval)
	}
	if !(p.Lower <= p.Guess && p.Guess <= p.Upper) {
		return nil, fmt.Errorf("%s: guess %g outside [%g, %g]: %w", MethodStochastic, p.Guess, p.Lower, p.Upper, ErrBadOptions)
	}
	if p.Slope == 0 || !utils.IsFinite(p.Slope) {
		return nil, fmt.Errorf("%s: slope %g: %w", MethodStochastic, p.Slope, ErrBadOptions)
	}
	if p.Window == 0 {
		p.Window = DefaultWindow
	}
	if p.Window < 2 {
		return nil, fmt.Errorf("%s: window %d must be at least 2: %w", MethodStochastic, p.Window, ErrBadOptions)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodStochastic, err)
	}
	return &StochasticApproximation{f: f, params: p, opts: o}, nil
}

func (s *StochasticApproximation) Method() Method {
	return MethodStochastic
}

func (s *StochasticApproximation) Options() Options {
	return s.opts
}

func (s *StochasticApproximation) Params() StochasticParams {
	return s.params
}

func (s *StochasticApproximation) Solve() (Result, error) {
	var (
		p      = s.params
		rng    = rand.New(rand.NewSource(p.Seed))
		a      = 1 / p.Slope
		x      = p.Guess
		window = make([]float64, 0, p.Window+1)
	)
	for k := 1; k <= s.opts.MaxIterations; k++ {
		fx := s.f(x)
		if s.opts.Observer != nil {
			s.opts.Observer(Step{
				Method:    MethodStochastic,
				Iteration: k,
				Lower:     p.Lower,
				Upper:     p.Upper,
				FLower:    math.NaN(),
				FUpper:    math.NaN(),
				X:         x,
				FX:        fx,
				DFX:       math.NaN(),
			})
		}

		window = append(window, x)
		if len(window) > p.Window {
			window = window[1:]
		}
		if len(window) == p.Window && utils.Diameter(window) < s.opts.Epsilon {
			return newResult(utils.Average(window), k, Converged), nil
		}

		next := x - a*fx/float64(k)
		if !(p.Lower <= next && next <= p.Upper) {
			next = p.Lower + rng.Float64()*(p.Upper-p.Lower)
		}
		x = next
	}
	return newResult(utils.Average(window), s.opts.MaxIterations, Exhausted), nil
}
