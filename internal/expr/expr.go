// Package expr turns textual formulas in one variable x into solver
// functions, e.g. "x**2 - 2" or "exp(-x) - x".
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/Knetic/govaluate"

	"github.com/wildstyl3r/rootfind/internal/solver"
)

const Variable = "x"

var (
	ErrUnknownVariable = errors.New("expr: unknown variable")
	ErrNotANumber      = errors.New("expr: expression did not evaluate to a number")
)

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"tanh": unary(math.Tanh),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expects 1 argument, got %d", len(args))
		}
		return fn(toFloat(args[0])), nil
	}
}

// Function is a compiled expression. It is safe for concurrent use.
type Function struct {
	source string
	expr   *govaluate.EvaluableExpression

	mu       sync.Mutex
	firstErr error
}

func Compile(expression string) (*Function, error) {
	source := strings.TrimSpace(expression)
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(source, functions)
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", expression, err)
	}
	for _, name := range parsed.Vars() {
		if _, ok := constants[name]; name != Variable && !ok {
			return nil, fmt.Errorf("%w %q in %q", ErrUnknownVariable, name, expression)
		}
	}
	return &Function{source: source, expr: parsed}, nil
}

func (f *Function) String() string {
	return f.source
}

func (f *Function) Eval(x float64) (float64, error) {
	params := make(map[string]interface{}, len(constants)+1)
	for name, value := range constants {
		params[name] = value
	}
	params[Variable] = x

	v, err := f.expr.Evaluate(params)
	if err != nil {
		return math.NaN(), err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("%w: %q", ErrNotANumber, t)
		}
		return parsed, nil
	default:
		return math.NaN(), fmt.Errorf("%w: %T", ErrNotANumber, v)
	}
}

// Func adapts f to solver.Func. Evaluation errors become NaN, which the
// solvers report as a failed or non-converged run; the first error is kept
// for Err.
func (f *Function) Func() solver.Func {
	return func(x float64) float64 {
		v, err := f.Eval(x)
		if err != nil {
			f.mu.Lock()
			if f.firstErr == nil {
				f.firstErr = fmt.Errorf("expr: %s at x=%g: %w", f.source, x, err)
			}
			f.mu.Unlock()
		}
		return v
	}
}

func (f *Function) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.firstErr
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
