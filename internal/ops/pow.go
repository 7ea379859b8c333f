package ops

import (
	"math"

	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// Pow raises its input to a constant power: y = x^p, with the exponent
// supplied as the named parameter "p" (a literal, not a variable — no
// gradient flows to it).
//
// Backward:
//
//	d(x^p)/dx = p * x^(p-1)
var Pow = scalar.NewOp("Pow",
	func(xs []float64, params scalar.Params) float64 {
		return math.Pow(xs[0], params["p"])
	},
	func(xs []float64, params scalar.Params) []float64 {
		p := params["p"]
		return []float64{p * math.Pow(xs[0], p-1)}
	},
)

// Mod is the floating-point remainder y = x mod m, with the modulus
// supplied as the named parameter "m".
//
// Backward:
//
//	d(x mod m)/dx = 1
//
// The derivative is the catalog's historical placeholder: it ignores the
// subgradient structure at the wrap-around boundaries, where x mod m is
// not differentiable. Kept as-is; replace the entry if exact boundary
// behavior matters.
var Mod = scalar.NewOp("Mod",
	func(xs []float64, params scalar.Params) float64 {
		return math.Mod(xs[0], params["m"])
	},
	func(xs []float64, _ scalar.Params) []float64 {
		return []float64{1}
	},
)

// Abs is the absolute value y = |x|.
//
// Backward:
//
//	d|x|/dx = -1 for x < 0, else 1
//
// The +1 convention at x = 0 is arbitrary (|x| has no derivative there)
// and matches the catalog's historical choice.
var Abs = scalar.NewOp("Abs",
	func(xs []float64, _ scalar.Params) float64 { return math.Abs(xs[0]) },
	func(xs []float64, _ scalar.Params) []float64 {
		if xs[0] < 0 {
			return []float64{-1}
		}
		return []float64{1}
	},
)
