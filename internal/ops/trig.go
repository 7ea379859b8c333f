package ops

import (
	"math"

	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// Sin is y = sin(x).
//
// Backward:
//
//	d(sin x)/dx = cos(x)
var Sin = scalar.NewOp("Sin",
	func(xs []float64, _ scalar.Params) float64 { return math.Sin(xs[0]) },
	func(xs []float64, _ scalar.Params) []float64 { return []float64{math.Cos(xs[0])} },
)

// Cos is y = cos(x).
//
// Backward:
//
//	d(cos x)/dx = -sin(x)
var Cos = scalar.NewOp("Cos",
	func(xs []float64, _ scalar.Params) float64 { return math.Cos(xs[0]) },
	func(xs []float64, _ scalar.Params) []float64 { return []float64{-math.Sin(xs[0])} },
)
