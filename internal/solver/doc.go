// Package solver finds a root of a scalar function f: R -> R with three
// classical iterative methods:
//
//   - Bisection: halves a sign-changing bracket [lower, upper] each step.
//   - FalsePosition (regula falsi): replaces the midpoint with the x-intercept
//     of the secant through (lower, f(lower)) and (upper, f(upper)).
//   - NewtonRaphson: follows the tangent from a single initial guess.
//
// Every solver is configured once through its constructor and run with
// Solve, which returns a Result holding the root rounded to two decimal
// places, the unrounded approximation and the 1-based number of the step at
// which |f(x)| < Epsilon held. When the iteration budget runs out first,
// Solve still returns a Result (State == Exhausted) carrying the last
// candidate and Iterations == MaxIterations; it is not an error.
//
// Failures are reported as *SolveError values that unwrap to one of
// ErrInvalidBracket, ErrBracketMaintenance or ErrZeroDerivative.
//
// Usage:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	b, err := solver.NewBisection(f, 0, 2, solver.WithEpsilon(1e-6))
//	if err != nil {
//		return err
//	}
//	res, err := b.Solve() // res.Root == 1.41, res.Iterations == 22
//
// Newton-Raphson has no protection against divergence or cycling; start it
// close to a simple root or use a bracketing method.
package solver
