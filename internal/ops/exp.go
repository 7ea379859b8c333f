package ops

import (
	"math"

	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// Exp is y = e^x.
//
// Backward:
//
//	d(e^x)/dx = e^x
var Exp = scalar.NewOp("Exp",
	func(xs []float64, _ scalar.Params) float64 { return math.Exp(xs[0]) },
	func(xs []float64, _ scalar.Params) []float64 { return []float64{math.Exp(xs[0])} },
)

// Log is the natural logarithm y = ln(x).
//
// Backward:
//
//	d(ln x)/dx = 1/x
//
// Domain errors follow math.Log: a non-positive input yields NaN or -Inf,
// which propagates through the graph uncaught.
var Log = scalar.NewOp("Log",
	func(xs []float64, _ scalar.Params) float64 { return math.Log(xs[0]) },
	func(xs []float64, _ scalar.Params) []float64 { return []float64{1 / xs[0]} },
)
