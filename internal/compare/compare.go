// Package compare runs every solver on one problem and picks the most
// efficient method.
package compare

import (
	"sync"

	"github.com/google/uuid"

	"github.com/wildstyl3r/rootfind/internal/config"
	"github.com/wildstyl3r/rootfind/internal/solver"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

// Order is the evaluation order of Run; it also breaks ties in Best.
var Order = []solver.Method{
	solver.MethodFalsePosition,
	solver.MethodBisection,
	solver.MethodNewtonRaphson,
}

// Problem is solved by the bracketing methods on [Lower, Upper] and by
// Newton-Raphson from Guess. DF is only used by Newton-Raphson.
type Problem struct {
	F       solver.Func
	DF      solver.Func
	Lower   float64
	Upper   float64
	Guess   float64
	Options []solver.Option
}

func FromConfig(c config.Config) Problem {
	v := c.Velocity()
	return Problem{
		F:       v.F,
		DF:      v.DF,
		Lower:   c.Solver.Lower,
		Upper:   c.Solver.Upper,
		Guess:   c.Solver.InitialGuess,
		Options: c.Solver.Options(),
	}
}

type Outcome struct {
	Method solver.Method
	Result solver.Result
	Err    error
	Steps  []solver.Step
}

type Report struct {
	ID       string
	Outcomes []Outcome // in Order
}

// Run solves p with every method concurrently. Failures are kept in the
// corresponding Outcome.
func Run(p Problem) Report {
	report := Report{
		ID:       uuid.NewString(),
		Outcomes: make([]Outcome, len(Order)),
	}

	var wg sync.WaitGroup
	for i, method := range Order {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome := &report.Outcomes[i]
			outcome.Method = method

			opts := make([]solver.Option, 0, len(p.Options)+1)
			opts = append(opts, p.Options...)
			opts = append(opts, solver.WithObserver(func(s solver.Step) {
				outcome.Steps = append(outcome.Steps, s)
			}))

			s, err := build(method, p, opts)
			if err != nil {
				outcome.Err = err
				return
			}
			outcome.Result, outcome.Err = s.Solve()
		}()
	}
	wg.Wait()
	return report
}

func build(method solver.Method, p Problem, opts []solver.Option) (solver.Solver, error) {
	switch method {
	case solver.MethodBisection:
		return solver.NewBisection(p.F, p.Lower, p.Upper, opts...)
	case solver.MethodFalsePosition:
		return solver.NewFalsePosition(p.F, p.Lower, p.Upper, opts...)
	default:
		return solver.NewNewtonRaphson(p.F, p.DF, p.Guess, opts...)
	}
}

// Best returns the successful outcome with the fewest iterations; ties go
// to the earlier method in Order. ok is false when every method failed.
func (r Report) Best() (best Outcome, ok bool) {
	var (
		candidates []Outcome
		iterations []int
	)
	for _, o := range r.Outcomes {
		if o.Err == nil {
			candidates = append(candidates, o)
			iterations = append(iterations, o.Result.Iterations)
		}
	}
	i := utils.Argmin(iterations)
	if i < 0 {
		return Outcome{}, false
	}
	return candidates[i], true
}
