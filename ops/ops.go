// Copyright 2025 The Semigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops is the standard operation catalog: ready-made differentiable
// primitives built on the scalar.Op contract. The engine has no knowledge
// of this catalog; user code may extend or replace it freely with
// scalar.NewOp.
//
// Example:
//
//	g := scalar.New()
//	x := g.Value(2)
//	y := ops.Pow.ApplyWith(scalar.Params{"p": 3}, x) // x³ = 8
//	scalar.Backward(y)
//	dx, _ := x.Grad() // 3x² = 12
package ops

import (
	"github.com/semigrad-ml/semigrad/internal/ops"
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// The standard catalog. Named constants: Pow takes the exponent as "p",
// Mod takes the modulus as "m".
var (
	Plus  = ops.Plus  // x + y
	Sum   = ops.Sum   // x1 + ... + xn
	Times = ops.Times // x * y
	Pow   = ops.Pow   // x^p
	Mod   = ops.Mod   // x mod m
	Abs   = ops.Abs   // |x|
	Sin   = ops.Sin
	Cos   = ops.Cos
	Exp   = ops.Exp
	Log   = ops.Log
)

// Registry maps lowercase operation names to the catalog entries, for
// callers that resolve operations dynamically.
func Registry() map[string]*scalar.Op {
	return ops.Registry()
}
