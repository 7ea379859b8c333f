// Copyright 2025 The Semigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient descent over scalar computation graphs.
//
// Because node values are immutable, every step builds a fresh graph from
// the current parameter values via the caller's Builder, runs Backward,
// and moves each parameter against its leaf's gradient.
//
// Example:
//
//	res, err := optim.Minimize(func(g *scalar.Graph, p map[string]*scalar.Scalar) *scalar.Scalar {
//	    diff := ops.Plus.Apply(p["x"], g.Value(-3))
//	    return ops.Times.Apply(diff, diff) // (x-3)²
//	}, map[string]float64{"x": 0}, optim.Config{Rate: 0.1, Steps: 200})
package optim

import (
	"github.com/semigrad-ml/semigrad/internal/optim"
)

// Builder constructs the objective for one descent step.
type Builder = optim.Builder

// Config holds the descent settings.
type Config = optim.Config

// Result reports the final parameters and the loss evaluated at them.
type Result = optim.Result

// ErrNoParameters is returned when there is nothing to optimize.
var ErrNoParameters = optim.ErrNoParameters

// Minimize runs plain gradient descent from the initial parameter values.
func Minimize(build Builder, init map[string]float64, cfg Config) (*Result, error) {
	return optim.Minimize(build, init, cfg)
}
