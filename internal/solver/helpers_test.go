package solver_test

import (
	"github.com/wildstyl3r/rootfind/internal/solver"
)

// countingFunc wraps f and counts its evaluations.
func countingFunc(f solver.Func) (solver.Func, *int) {
	calls := 0
	return func(x float64) float64 {
		calls++
		return f(x)
	}, &calls
}

// recorder collects observer steps.
type recorder struct {
	steps []solver.Step
}

func (r *recorder) observe(s solver.Step) {
	r.steps = append(r.steps, s)
}

func sqrt2(x float64) float64 { return x*x - 2 }

func noRealRoot(x float64) float64 { return x*x + 1 }
