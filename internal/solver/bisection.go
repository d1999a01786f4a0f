package solver

// Bisection narrows a sign-changing bracket by halving it every step.
// Convergence is linear: the bracket width after k steps is (upper-lower)/2^k.
type Bisection struct {
	bracketing
}

// NewBisection validates the configuration; the bracket itself is checked
// by Solve. Defaults: DefaultEpsilon, DefaultMaxIterations.
func NewBisection(f Func, lower, upper float64, opts ...Option) (*Bisection, error) {
	b, err := newBracketing(MethodBisection, midpoint, f, lower, upper, opts)
	if err != nil {
		return nil, err
	}
	return &Bisection{bracketing: b}, nil
}

func (b *Bisection) Solve() (Result, error) {
	return b.solve()
}

func midpoint(_ Func, lower, upper float64) float64 {
	return (lower + upper) / 2
}
