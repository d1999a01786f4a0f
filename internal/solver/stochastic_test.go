package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/rootfind/internal/solver"
)

func TestStochastic_ExactFunction(t *testing.T) {
	f := func(x float64) float64 { return x - 1.3 }
	s, err := solver.NewStochasticApproximation(f, solver.StochasticParams{
		Lower: 0, Upper: 4, Guess: 0, Slope: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, solver.MethodStochastic, s.Method())
	assert.Equal(t, solver.DefaultWindow, s.Params().Window)

	// With the exact slope the first step lands on the root; the guess must
	// then leave the window before the iterates agree.
	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, solver.Converged, res.State)
	assert.Equal(t, solver.DefaultWindow+1, res.Iterations)
	assert.InDelta(t, 1.3, res.Approx, 1e-12)
	assert.Equal(t, 1.3, res.Root)
}

func TestStochastic_NoisyFunction(t *testing.T) {
	noise := rand.New(rand.NewSource(7))
	f := func(x float64) float64 { return x - 2 + 0.1*noise.NormFloat64() }

	s, err := solver.NewStochasticApproximation(f, solver.StochasticParams{
		Lower: 0, Upper: 5, Guess: 0, Slope: 1,
	}, solver.WithEpsilon(0.01), solver.WithMaxIterations(1000))
	require.NoError(t, err)

	res, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, res.Converged())
	assert.InDelta(t, 2, res.Approx, 0.1)
}

func TestStochastic_IteratesStayInRange(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	var rec recorder
	params := solver.StochasticParams{Lower: 0, Upper: 4, Guess: 0, Slope: 0.01, Seed: 42}

	s, err := solver.NewStochasticApproximation(f, params, solver.WithObserver(rec.observe))
	require.NoError(t, err)
	first, err := s.Solve()
	require.NoError(t, err)

	require.NotEmpty(t, rec.steps)
	for _, step := range rec.steps {
		assert.GreaterOrEqual(t, step.X, params.Lower)
		assert.LessOrEqual(t, step.X, params.Upper)
	}

	second, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, first, second, "a fixed seed repeats the run")
}

func TestStochastic_BadParams(t *testing.T) {
	f := func(x float64) float64 { return x }
	tests := []struct {
		name   string
		f      solver.Func
		params solver.StochasticParams
		want   error
	}{
		{"nil function", nil, solver.StochasticParams{Upper: 1, Slope: 1}, solver.ErrNilFunction},
		{"empty range", f, solver.StochasticParams{Lower: 1, Upper: 1, Guess: 1, Slope: 1}, solver.ErrBadInterval},
		{"guess outside", f, solver.StochasticParams{Upper: 1, Guess: 2, Slope: 1}, solver.ErrBadOptions},
		{"zero slope", f, solver.StochasticParams{Upper: 1}, solver.ErrBadOptions},
		{"tiny window", f, solver.StochasticParams{Upper: 1, Slope: 1, Window: 1}, solver.ErrBadOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.NewStochasticApproximation(tt.f, tt.params)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
