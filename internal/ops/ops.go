// Package ops is the standard operation catalog for the scalar engine:
// plain data built on the scalar.Op contract, one (forward formula,
// analytic derivative) pair per operation. The engine never depends on
// this catalog; it can be extended or replaced without touching the
// engine.
//
// Catalog:
//   - Plus: x + y            (d/dx = 1, d/dy = 1)
//   - Sum: x1 + ... + xn     (d/dxi = 1)
//   - Times: x * y           (d/dx = y, d/dy = x)
//   - Pow: x^p, p a named constant
//   - Mod: x mod m, m a named constant
//   - Abs: |x|
//   - Sin, Cos, Exp, Log
//
// Registry exposes the catalog by lowercase name for callers that resolve
// operations dynamically, such as the expression parser.
package ops

import "github.com/semigrad-ml/semigrad/internal/scalar"

// Registry maps lowercase operation names to the catalog entries.
func Registry() map[string]*scalar.Op {
	return map[string]*scalar.Op{
		"plus":  Plus,
		"sum":   Sum,
		"times": Times,
		"pow":   Pow,
		"mod":   Mod,
		"abs":   Abs,
		"sin":   Sin,
		"cos":   Cos,
		"exp":   Exp,
		"log":   Log,
	}
}
