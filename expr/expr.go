// Copyright 2025 The Semigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr parses arithmetic expressions into scalar computation
// graphs, resolving function names against the standard operation catalog.
//
// Example:
//
//	g := scalar.New()
//	res, err := expr.Parse(g, "sin(x)*x", map[string]float64{"x": 2})
//	if err != nil {
//	    // ...
//	}
//	scalar.Backward(res.Root)
//	dx, _ := res.Vars["x"].Grad() // sin(2) + 2cos(2)
package expr

import (
	"github.com/semigrad-ml/semigrad/internal/expr"
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// Result is a parsed expression: the graph root plus the leaf node bound
// to each variable.
type Result = expr.Result

// Parsing errors.
var (
	ErrSyntax           = expr.ErrSyntax
	ErrUnknownFunction  = expr.ErrUnknownFunction
	ErrUnboundVariable  = expr.ErrUnboundVariable
	ErrConstantRequired = expr.ErrConstantRequired
)

// Parse builds src into g, binding each variable name to a leaf holding
// its value from vars.
func Parse(g *scalar.Graph, src string, vars map[string]float64) (*Result, error) {
	return expr.Parse(g, src, vars)
}

// ParseBound is Parse with variables bound to caller-created leaves
// instead of raw values.
func ParseBound(g *scalar.Graph, src string, leaves map[string]*scalar.Scalar) (*Result, error) {
	return expr.ParseBound(g, src, leaves)
}
