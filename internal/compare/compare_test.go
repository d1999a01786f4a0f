package compare_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/config"
	"github.com/wildstyl3r/rootfind/internal/solver"
)

func sqrt2() compare.Problem {
	return compare.Problem{
		F:     func(x float64) float64 { return x*x - 2 },
		DF:    func(x float64) float64 { return 2 * x },
		Lower: 0,
		Upper: 2,
		Guess: 1,
	}
}

func TestRun_ReferenceProblem(t *testing.T) {
	report := compare.Run(compare.FromConfig(config.Default()))

	_, err := uuid.Parse(report.ID)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, len(compare.Order))

	for i, o := range report.Outcomes {
		assert.Equal(t, compare.Order[i], o.Method)
		require.NoError(t, o.Err, o.Method)
		assert.True(t, o.Result.Converged(), o.Method)
		assert.InDelta(t, 68.29, o.Result.Root, 1e-9, o.Method)
		assert.Len(t, o.Steps, o.Result.Iterations, o.Method)
		for _, s := range o.Steps {
			assert.Equal(t, o.Method, s.Method)
		}
	}

	best, ok := report.Best()
	require.True(t, ok)
	assert.Equal(t, solver.MethodNewtonRaphson, best.Method)
}

func TestRun_OptionsAreApplied(t *testing.T) {
	p := sqrt2()
	p.Options = []solver.Option{solver.WithMaxIterations(3)}

	report := compare.Run(p)
	for _, o := range report.Outcomes {
		require.NoError(t, o.Err)
		assert.LessOrEqual(t, o.Result.Iterations, 3, o.Method)
	}
	bisection := report.Outcomes[1]
	assert.Equal(t, solver.Exhausted, bisection.Result.State)
	assert.Len(t, bisection.Steps, 3)
}

func TestRun_FailuresAreKeptPerMethod(t *testing.T) {
	p := sqrt2()
	p.Lower, p.Upper = 2, 0

	report := compare.Run(p)
	assert.ErrorIs(t, report.Outcomes[0].Err, solver.ErrBadInterval)
	assert.ErrorIs(t, report.Outcomes[1].Err, solver.ErrBadInterval)
	require.NoError(t, report.Outcomes[2].Err)

	best, ok := report.Best()
	require.True(t, ok)
	assert.Equal(t, solver.MethodNewtonRaphson, best.Method)

	p = sqrt2()
	p.DF = nil
	report = compare.Run(p)
	assert.ErrorIs(t, report.Outcomes[2].Err, solver.ErrNilFunction)
	best, ok = report.Best()
	require.True(t, ok)
	assert.Equal(t, solver.MethodFalsePosition, best.Method)
}

func TestBest(t *testing.T) {
	outcome := func(m solver.Method, iterations int, err error) compare.Outcome {
		return compare.Outcome{Method: m, Result: solver.Result{Iterations: iterations}, Err: err}
	}
	failed := errors.New("failed")

	tests := []struct {
		name     string
		outcomes []compare.Outcome
		want     solver.Method
		ok       bool
	}{
		{
			name: "fewest iterations",
			outcomes: []compare.Outcome{
				outcome(solver.MethodFalsePosition, 10, nil),
				outcome(solver.MethodBisection, 22, nil),
				outcome(solver.MethodNewtonRaphson, 5, nil),
			},
			want: solver.MethodNewtonRaphson,
			ok:   true,
		},
		{
			name: "tie goes to earlier method",
			outcomes: []compare.Outcome{
				outcome(solver.MethodFalsePosition, 7, nil),
				outcome(solver.MethodBisection, 7, nil),
				outcome(solver.MethodNewtonRaphson, 7, nil),
			},
			want: solver.MethodFalsePosition,
			ok:   true,
		},
		{
			name: "failed methods are ignored",
			outcomes: []compare.Outcome{
				outcome(solver.MethodFalsePosition, 1, failed),
				outcome(solver.MethodBisection, 22, nil),
				outcome(solver.MethodNewtonRaphson, 0, failed),
			},
			want: solver.MethodBisection,
			ok:   true,
		},
		{
			name: "all failed",
			outcomes: []compare.Outcome{
				outcome(solver.MethodFalsePosition, 1, failed),
				outcome(solver.MethodBisection, 1, failed),
			},
		},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := compare.Report{Outcomes: tt.outcomes}.Best()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, best.Method)
		})
	}
}

func TestWriteTrace(t *testing.T) {
	report := compare.Run(sqrt2())
	total := 0
	for _, o := range report.Outcomes {
		total += len(o.Steps)
	}
	require.Len(t, report.TraceRows(), total)

	dir := t.TempDir()
	path, err := report.WriteTrace(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "trace_"+report.ID+".csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, total+1)
	assert.Equal(t, compare.TraceColumns, records[0])
	assert.Equal(t, "bisection#1", records[1][0])
	assert.Equal(t, "bisection#2", records[2][0])

	for _, r := range records[1:] {
		if r[1] == string(solver.MethodNewtonRaphson) {
			assert.Empty(t, r[3], "newton rows carry no bracket")
		} else {
			assert.NotEmpty(t, r[3])
			assert.Empty(t, r[9], "bracketing rows carry no derivative")
		}
	}
}
