package solver

import (
	"fmt"
	"math"
)

const (
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = 50
)

// Options is the immutable configuration of a solver.
type Options struct {
	Epsilon       float64
	MaxIterations int
	// Observer, if set, is called once per iteration. It sees every step but
	// cannot alter the outcome. Bracketing solvers evaluate f at both bounds
	// for the observer, so function call counts differ when one is set.
	Observer func(Step)
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithEpsilon sets the convergence tolerance on |f(x)|.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the hard iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

func WithObserver(fn func(Step)) Option {
	return func(o *Options) { o.Observer = fn }
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon <= 0 {
		return Options{}, fmt.Errorf("epsilon %g must be finite and positive: %w", o.Epsilon, ErrBadOptions)
	}
	if o.MaxIterations <= 0 {
		return Options{}, fmt.Errorf("max iterations %d must be positive: %w", o.MaxIterations, ErrBadOptions)
	}
	return o, nil
}
