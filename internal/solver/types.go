package solver

import "github.com/wildstyl3r/rootfind/internal/utils"

// Func is a pure scalar function. Solvers never cache its values.
type Func func(x float64) float64

type Method string

const (
	MethodBisection     Method = "bisection"
	MethodFalsePosition Method = "false-position"
	MethodNewtonRaphson Method = "newton-raphson"
	MethodStochastic    Method = "stochastic-approximation"
)

// Solver is the contract shared by all methods.
type Solver interface {
	Method() Method
	Solve() (Result, error)
}

// State of a solve call: Validating -> Iterating -> {Converged, Exhausted},
// with Failed reachable from Validating and Iterating.
type State int

const (
	Validating State = iota
	Iterating
	Converged
	Exhausted
	Failed
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

const rootDecimals = 2

type Result struct {
	Root       float64 // Approx rounded to two decimal places
	Approx     float64
	Iterations int // 1-based step of convergence, or MaxIterations
	State      State
}

func (r Result) Converged() bool {
	return r.State == Converged
}

func newResult(x float64, iterations int, state State) Result {
	return Result{
		Root:       utils.RoundTo(x, rootDecimals),
		Approx:     x,
		Iterations: iterations,
		State:      state,
	}
}

// Step describes one iteration as seen by an observer.
// Bracketing methods fill Lower/Upper/FLower/FUpper with the bracket the
// candidate X was computed from; Newton-Raphson fills DFX, which is NaN on
// the converging step because the derivative is not evaluated there.
type Step struct {
	Method    Method
	Iteration int
	Lower     float64
	Upper     float64
	FLower    float64
	FUpper    float64
	X         float64
	FX        float64
	DFX       float64
}
