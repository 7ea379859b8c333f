// Copyright 2025 The Semigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar is the public API of the reverse-mode automatic
// differentiation engine over scalar values.
//
// A Graph owns all nodes of one computation. Leaves come from
// Graph.Value; applying an Op to existing nodes evaluates it eagerly and
// appends one new node, so the dependency graph is built as a side effect
// of ordinary evaluation. Backward then fills in d(root)/d(node) for every
// ancestor in a single reverse sweep.
//
// Example:
//
//	import (
//	    "github.com/semigrad-ml/semigrad/ops"
//	    "github.com/semigrad-ml/semigrad/scalar"
//	)
//
//	func main() {
//	    g := scalar.New()
//	    a, b := g.Value(2), g.Value(3)
//	    z := ops.Times.Apply(ops.Plus.Apply(a, b), a) // (a+b)*a = 10
//
//	    scalar.Backward(z)
//	    da, _ := a.Grad() // 7
//	    db, _ := b.Grad() // 2
//	    _ = da + db
//	}
package scalar

import (
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// Graph is an arena owning the nodes of one computation graph.
type Graph = scalar.Graph

// Scalar is one node: a value plus its provenance and gradient accumulator.
type Scalar = scalar.Scalar

// Op is a named (forward, backward) pair of pure functions, stateless and
// shared across nodes.
type Op = scalar.Op

// Params holds an operation's named non-differentiable constants.
type Params = scalar.Params

// ForwardFunc computes a result from input values and named constants.
type ForwardFunc = scalar.ForwardFunc

// BackwardFunc computes one local partial derivative per positional input.
type BackwardFunc = scalar.BackwardFunc

// Engine misuse panics.
var (
	ErrNoInputs       = scalar.ErrNoInputs
	ErrGraphMismatch  = scalar.ErrGraphMismatch
	ErrBadDerivatives = scalar.ErrBadDerivatives
)

// New creates an empty graph with its own node counter, independent of
// any other graph.
func New() *Graph {
	return scalar.New()
}

// NewOp creates an operation from a display name, a forward formula, and
// the corresponding analytic derivative formula(s).
//
// Example:
//
//	Square := scalar.NewOp("Square",
//	    func(xs []float64, _ scalar.Params) float64 { return xs[0] * xs[0] },
//	    func(xs []float64, _ scalar.Params) []float64 { return []float64{2 * xs[0]} },
//	)
func NewOp(name string, forward ForwardFunc, backward BackwardFunc) *Op {
	return scalar.NewOp(name, forward, backward)
}

// Trace returns every node reachable from x via inputs, x included, in
// reverse construction order (a valid reverse-topological order).
func Trace(x *Scalar) []*Scalar {
	return scalar.Trace(x)
}

// Backward computes d(x)/d(n) for every ancestor n of x, accumulating
// onto each node's gradient. Gradients add across calls; use ResetGrad
// between independent passes.
func Backward(x *Scalar) {
	scalar.Backward(x)
}

// ResetGrad sets the gradient of every node in Trace(x) back to unset.
func ResetGrad(x *Scalar) {
	scalar.ResetGrad(x)
}
