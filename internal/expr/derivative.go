package expr

import (
	"math"

	"github.com/wildstyl3r/rootfind/internal/solver"
)

// DefaultStep is the relative step of Derivative.
const DefaultStep = 1e-6

// Derivative approximates f' with a central difference whose step is
// h·max(1, |x|). A non-positive h selects DefaultStep.
func Derivative(f solver.Func, h float64) solver.Func {
	if !(h > 0) {
		h = DefaultStep
	}
	return func(x float64) float64 {
		step := h * math.Max(1, math.Abs(x))
		return (f(x+step) - f(x-step)) / (2 * step)
	}
}
