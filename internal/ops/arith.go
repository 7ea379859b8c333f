package ops

import "github.com/semigrad-ml/semigrad/internal/scalar"

// Plus is binary addition: y = x1 + x2.
//
// Backward:
//
//	d(x1+x2)/dx1 = 1, d(x1+x2)/dx2 = 1
//
// The output gradient flows unchanged to both inputs.
var Plus = scalar.NewOp("Plus",
	func(xs []float64, _ scalar.Params) float64 { return xs[0] + xs[1] },
	func(xs []float64, _ scalar.Params) []float64 { return []float64{1, 1} },
)

// Sum is n-ary addition: y = x1 + ... + xn.
//
// Backward:
//
//	d(sum)/dxi = 1 for every input
var Sum = scalar.NewOp("Sum",
	func(xs []float64, _ scalar.Params) float64 {
		total := 0.0
		for _, x := range xs {
			total += x
		}
		return total
	},
	func(xs []float64, _ scalar.Params) []float64 {
		ds := make([]float64, len(xs))
		for i := range ds {
			ds[i] = 1
		}
		return ds
	},
)

// Times is binary multiplication: y = x1 * x2.
//
// Backward:
//
//	d(x1*x2)/dx1 = x2, d(x1*x2)/dx2 = x1
var Times = scalar.NewOp("Times",
	func(xs []float64, _ scalar.Params) float64 { return xs[0] * xs[1] },
	func(xs []float64, _ scalar.Params) []float64 { return []float64{xs[1], xs[0]} },
)
