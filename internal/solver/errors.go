package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBracket: f(lower)·f(upper) > 0 before the first iteration.
	ErrInvalidBracket = errors.New("solver: interval does not bracket a sign change")

	// ErrBracketMaintenance: after a candidate was computed neither
	// sub-interval showed a sign change.
	ErrBracketMaintenance = errors.New("solver: lost sign change while narrowing bracket")

	// ErrZeroDerivative: Newton-Raphson derivative is exactly zero.
	ErrZeroDerivative = errors.New("solver: derivative is zero")

	ErrBadOptions  = errors.New("solver: invalid options")
	ErrBadInterval = errors.New("solver: invalid interval")
	ErrNilFunction = errors.New("solver: nil function")
)

// SolveError carries the position at which a solve call failed.
// Iteration is 0 when the call failed before iterating.
type SolveError struct {
	Method    Method
	Iteration int
	X         float64
	Err       error
}

func (e *SolveError) Error() string {
	if e.Iteration == 0 {
		return fmt.Sprintf("%s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("%s: iteration %d at x=%g: %v", e.Method, e.Iteration, e.X, e.Err)
}

func (e *SolveError) Unwrap() error {
	return e.Err
}
