package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semigrad-ml/semigrad/internal/ops"
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// numericalGradient approximates df/dx at x with central finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// TestGradientCheck_SingleOps cross-checks each single-input catalog
// derivative against finite differences at a few points.
func TestGradientCheck_SingleOps(t *testing.T) {
	tests := []struct {
		name   string
		op     *scalar.Op
		params scalar.Params
		points []float64
	}{
		{name: "sin", op: ops.Sin, points: []float64{-1.3, 0, 0.5, 2.0}},
		{name: "cos", op: ops.Cos, points: []float64{-1.3, 0, 0.5, 2.0}},
		{name: "exp", op: ops.Exp, points: []float64{-1, 0, 1.5}},
		{name: "log", op: ops.Log, points: []float64{0.3, 1, 4}},
		{name: "abs away from zero", op: ops.Abs, points: []float64{-2, 3}},
		{name: "pow cubic", op: ops.Pow, params: scalar.Params{"p": 3}, points: []float64{-2, 0.7, 1.9}},
	}

	const epsilon = 1e-6
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				g := scalar.New()
				leaf := g.Value(x)
				out := tt.op.ApplyWith(tt.params, leaf)
				scalar.Backward(out)

				got := mustGrad(t, leaf)
				want := numericalGradient(func(v float64) float64 {
					return tt.op.EvalWith(tt.params, v)
				}, x, epsilon)

				assert.InDelta(t, want, got, 1e-4, "point %v", x)
			}
		})
	}
}

// TestGradientCheck_Composite cross-checks a composed expression,
// f(x) = sin(x)*x + exp(x), against finite differences.
func TestGradientCheck_Composite(t *testing.T) {
	f := func(x float64) float64 {
		return math.Sin(x)*x + math.Exp(x)
	}
	build := func(g *scalar.Graph, x float64) (*scalar.Scalar, *scalar.Scalar) {
		leaf := g.Value(x)
		out := ops.Plus.Apply(ops.Times.Apply(ops.Sin.Apply(leaf), leaf), ops.Exp.Apply(leaf))
		return out, leaf
	}

	for _, x := range []float64{-2, -0.5, 0, 1, 2.5} {
		g := scalar.New()
		out, leaf := build(g, x)
		assert.InDelta(t, f(x), out.Value(), 1e-12)

		scalar.Backward(out)
		want := numericalGradient(f, x, 1e-6)
		assert.InDelta(t, want, mustGrad(t, leaf), 1e-4, "point %v", x)
	}
}
