package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semigrad-ml/semigrad/internal/ops"
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// mustGrad fails the test if the node's gradient is unset.
func mustGrad(t *testing.T, s *scalar.Scalar) float64 {
	t.Helper()
	grad, ok := s.Grad()
	require.True(t, ok, "gradient unset for %s", s)
	return grad
}

func TestTrace_DescendingOrder(t *testing.T) {
	g := scalar.New()
	a := g.Value(2)
	b := g.Value(3)
	z := ops.Times.Apply(ops.Plus.Apply(a, b), a)

	trace := scalar.Trace(z)
	require.Len(t, trace, 4)
	assert.Same(t, z, trace[0], "the node constructed last comes first")
	for i := 1; i < len(trace); i++ {
		assert.Greater(t, trace[i-1].ID(), trace[i].ID())
	}
}

func TestTrace_SharedNodeVisitedOnce(t *testing.T) {
	g := scalar.New()
	x := g.Value(4)
	// x feeds both sides of the diamond.
	y := ops.Times.Apply(ops.Plus.Apply(x, x), x)

	trace := scalar.Trace(y)
	count := 0
	for _, n := range trace {
		if n == x {
			count++
		}
	}
	assert.Equal(t, 1, count, "a shared node must appear exactly once in the trace")
}

// The worked example: z = (a+b)*a with a=2, b=3. Forward value 10,
// dz/da = (a+b) + a = 7 via the product and sum rules, dz/db = a = 2.
func TestBackward_ProductSumRule(t *testing.T) {
	g := scalar.New()
	a := g.Value(2)
	b := g.Value(3)
	z := ops.Times.Apply(ops.Plus.Apply(a, b), a)

	require.Equal(t, 10.0, z.Value())

	scalar.Backward(z)

	assert.Equal(t, 1.0, mustGrad(t, z), "seed dz/dz = 1")
	assert.Equal(t, 7.0, mustGrad(t, a))
	assert.Equal(t, 2.0, mustGrad(t, b))
}

func TestBackward_MultiPathAccumulation(t *testing.T) {
	g := scalar.New()
	x := g.Value(5)
	y := ops.Plus.Apply(x, x) // y = x + x

	scalar.Backward(y)

	assert.Equal(t, 2.0, mustGrad(t, x), "gradients from multiple usages must sum")
}

func TestBackward_SumFansGradientOut(t *testing.T) {
	g := scalar.New()
	leaves := []*scalar.Scalar{g.Value(1), g.Value(2), g.Value(3), g.Value(4)}
	total := ops.Sum.Apply(leaves...)

	require.Equal(t, 10.0, total.Value())

	scalar.Backward(total)
	for _, leaf := range leaves {
		assert.Equal(t, 1.0, mustGrad(t, leaf))
	}
}

func TestBackward_LeafOnly(t *testing.T) {
	g := scalar.New()
	x := g.Value(3)

	scalar.Backward(x)

	assert.Equal(t, 1.0, mustGrad(t, x))
}

func TestResetGrad(t *testing.T) {
	g := scalar.New()
	a := g.Value(2)
	b := g.Value(3)
	z := ops.Times.Apply(ops.Plus.Apply(a, b), a)

	scalar.Backward(z)
	scalar.ResetGrad(z)

	for _, n := range scalar.Trace(z) {
		_, ok := n.Grad()
		assert.False(t, ok, "gradient must be unset after ResetGrad: %s", n)
	}

	// A second pass after reset reproduces the first pass exactly.
	scalar.Backward(z)
	assert.Equal(t, 7.0, mustGrad(t, a))
	assert.Equal(t, 2.0, mustGrad(t, b))
}

func TestBackward_WithoutResetAccumulatesAcrossPasses(t *testing.T) {
	g := scalar.New()
	x := g.Value(5)
	y := ops.Plus.Apply(x, x)

	scalar.Backward(y)
	scalar.Backward(y)

	// Documented hazard: without ResetGrad the two passes add together.
	assert.Equal(t, 4.0, mustGrad(t, x))
}

func TestBackward_DeepChain(t *testing.T) {
	// A 10000-deep chain of x+1 exercises the iterative trace; a recursive
	// DFS would be at risk on much deeper graphs.
	g := scalar.New()
	x := g.Value(0)
	one := g.Value(1)
	node := x
	const depth = 10000
	for i := 0; i < depth; i++ {
		node = ops.Plus.Apply(node, one)
	}

	require.Equal(t, float64(depth), node.Value())

	scalar.Backward(node)
	assert.Equal(t, 1.0, mustGrad(t, x))
	assert.Equal(t, float64(depth), mustGrad(t, one))
}
