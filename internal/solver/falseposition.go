package solver

// FalsePosition (regula falsi) narrows the bracket at the x-intercept of the
// secant through both endpoints. On strongly convex or concave functions one
// endpoint may stay fixed for many steps and progress becomes slow; no
// Illinois/Anderson-Björck correction is applied.
type FalsePosition struct {
	bracketing
}

func NewFalsePosition(f Func, lower, upper float64, opts ...Option) (*FalsePosition, error) {
	b, err := newBracketing(MethodFalsePosition, secantIntercept, f, lower, upper, opts)
	if err != nil {
		return nil, err
	}
	return &FalsePosition{bracketing: b}, nil
}

func (fp *FalsePosition) Solve() (Result, error) {
	return fp.solve()
}

func secantIntercept(f Func, lower, upper float64) float64 {
	fLower, fUpper := f(lower), f(upper)
	return (lower*fUpper - upper*fLower) / (fUpper - fLower)
}
