// Package optim provides gradient descent over scalar computation graphs.
//
// Node values are fixed at construction, so descent cannot update a graph
// in place: every step builds a fresh graph from the current parameter
// values, runs a backward pass, and moves each parameter against its
// leaf's gradient. Graphs are arena-owned and discarded wholesale between
// steps.
package optim

import (
	"errors"

	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// ErrNoParameters is returned when Minimize is called with nothing to
// optimize.
var ErrNoParameters = errors.New("optim: no parameters to optimize")

// Builder constructs the objective for one descent step: it receives a
// fresh graph plus one leaf per parameter and returns the loss node.
type Builder func(g *scalar.Graph, params map[string]*scalar.Scalar) *scalar.Scalar

// Config holds the descent settings.
type Config struct {
	Rate  float64 // learning rate (default: 0.01)
	Steps int     // number of descent steps (default: 100)

	// OnStep, when set, is called after each step with the step index,
	// the loss at the start of the step, and the updated parameters.
	OnStep func(step int, loss float64, params map[string]float64)
}

// Result reports the final parameter values and the loss evaluated at
// them.
type Result struct {
	Params map[string]float64
	Loss   float64
}

// Minimize runs plain gradient descent from the initial parameter values.
//
// A parameter whose leaf receives no gradient (it did not contribute to
// the loss) is left unchanged for that step.
//
// Example:
//
//	res, err := optim.Minimize(func(g *scalar.Graph, p map[string]*scalar.Scalar) *scalar.Scalar {
//	    diff := ops.Plus.Apply(p["x"], g.Value(-3))
//	    return ops.Times.Apply(diff, diff) // (x-3)²
//	}, map[string]float64{"x": 0}, optim.Config{Rate: 0.1, Steps: 200})
func Minimize(build Builder, init map[string]float64, cfg Config) (*Result, error) {
	if len(init) == 0 {
		return nil, ErrNoParameters
	}
	if cfg.Rate == 0 {
		cfg.Rate = 0.01
	}
	if cfg.Steps == 0 {
		cfg.Steps = 100
	}

	params := make(map[string]float64, len(init))
	for name, v := range init {
		params[name] = v
	}

	var loss float64
	for step := 0; step < cfg.Steps; step++ {
		g := scalar.New()
		leaves := make(map[string]*scalar.Scalar, len(params))
		for name, v := range params {
			leaves[name] = g.Value(v)
		}

		out := build(g, leaves)
		loss = out.Value()
		scalar.Backward(out)

		for name, leaf := range leaves {
			if grad, ok := leaf.Grad(); ok {
				params[name] -= cfg.Rate * grad
			}
		}
		if cfg.OnStep != nil {
			cfg.OnStep(step, loss, params)
		}
	}

	// Evaluate the loss once more at the final parameters.
	g := scalar.New()
	leaves := make(map[string]*scalar.Scalar, len(params))
	for name, v := range params {
		leaves[name] = g.Value(v)
	}
	return &Result{Params: params, Loss: build(g, leaves).Value()}, nil
}
