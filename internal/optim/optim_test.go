package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semigrad-ml/semigrad/internal/ops"
	"github.com/semigrad-ml/semigrad/internal/optim"
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// quadratic builds (x-3)², minimized at x = 3.
func quadratic(g *scalar.Graph, params map[string]*scalar.Scalar) *scalar.Scalar {
	diff := ops.Plus.Apply(params["x"], g.Value(-3))
	return ops.Times.Apply(diff, diff)
}

func TestMinimize_Quadratic(t *testing.T) {
	res, err := optim.Minimize(quadratic, map[string]float64{"x": 0}, optim.Config{
		Rate:  0.1,
		Steps: 200,
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, res.Params["x"], 1e-6)
	assert.InDelta(t, 0.0, res.Loss, 1e-10)
}

func TestMinimize_TwoParameters(t *testing.T) {
	// (x-1)² + (y+2)², minimized at (1, -2).
	build := func(g *scalar.Graph, p map[string]*scalar.Scalar) *scalar.Scalar {
		dx := ops.Plus.Apply(p["x"], g.Value(-1))
		dy := ops.Plus.Apply(p["y"], g.Value(2))
		return ops.Plus.Apply(ops.Times.Apply(dx, dx), ops.Times.Apply(dy, dy))
	}

	res, err := optim.Minimize(build, map[string]float64{"x": 5, "y": 5}, optim.Config{
		Rate:  0.1,
		Steps: 300,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Params["x"], 1e-6)
	assert.InDelta(t, -2.0, res.Params["y"], 1e-6)
}

func TestMinimize_OnStep(t *testing.T) {
	var steps int
	var losses []float64

	_, err := optim.Minimize(quadratic, map[string]float64{"x": 0}, optim.Config{
		Rate:  0.1,
		Steps: 50,
		OnStep: func(step int, loss float64, params map[string]float64) {
			require.Equal(t, steps, step)
			steps++
			losses = append(losses, loss)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 50, steps)
	assert.Less(t, losses[len(losses)-1], losses[0], "loss should decrease")
}

func TestMinimize_UnusedParameterUnchanged(t *testing.T) {
	res, err := optim.Minimize(quadratic, map[string]float64{"x": 0, "idle": 7}, optim.Config{
		Rate:  0.1,
		Steps: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, res.Params["idle"])
}

func TestMinimize_NoParameters(t *testing.T) {
	_, err := optim.Minimize(quadratic, nil, optim.Config{})
	assert.ErrorIs(t, err, optim.ErrNoParameters)
}
