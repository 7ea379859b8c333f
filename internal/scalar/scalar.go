// Package scalar implements reverse-mode automatic differentiation over
// scalar values.
//
// A Graph owns an arena of Scalar nodes. Leaves are created with
// Graph.Value; every Op application appends exactly one new node linking
// back to its inputs, so the computation graph is built implicitly and
// eagerly during ordinary evaluation. Backward walks the graph in reverse
// construction order and accumulates d(root)/d(node) on every ancestor via
// the chain rule.
//
// Usage:
//
//	g := scalar.New()
//	a, b := g.Value(2), g.Value(3)
//	z := Times.Apply(Plus.Apply(a, b), a) // z = (a+b)*a = 10
//	scalar.Backward(z)
//	grad, _ := a.Grad() // 7
package scalar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Params holds the named non-differentiable constants of an operation,
// e.g. the exponent of Pow or the modulus of Mod. Gradients never flow
// through params.
type Params map[string]float64

// Scalar is a node in the computation graph: a value produced either
// directly by the caller (a leaf) or by applying an Op to prior nodes.
//
// A Scalar is immutable after creation except for its gradient
// accumulator, which Backward populates and ResetGrad clears. Inputs are
// stored as arena indices rather than pointers; the owning Graph holds all
// node storage.
type Scalar struct {
	graph  *Graph
	id     int
	value  float64
	op     *Op
	inputs []int
	params Params

	grad    float64
	gradSet bool
}

// Value returns the scalar result of this node, fixed at creation time.
func (s *Scalar) Value() float64 {
	return s.value
}

// ID returns the node's position in construction order within its graph.
// A node's inputs always have strictly smaller IDs.
func (s *Scalar) ID() int {
	return s.id
}

// Op returns the operation that produced this node, or nil for a leaf.
func (s *Scalar) Op() *Op {
	return s.op
}

// Inputs returns the direct predecessors consumed to produce this node,
// in application order. Empty iff the node is a leaf.
func (s *Scalar) Inputs() []*Scalar {
	if len(s.inputs) == 0 {
		return nil
	}
	ins := make([]*Scalar, len(s.inputs))
	for i, id := range s.inputs {
		ins[i] = s.graph.nodes[id]
	}
	return ins
}

// Param returns the named constant passed to the producing operation.
func (s *Scalar) Param(name string) (float64, bool) {
	v, ok := s.params[name]
	return v, ok
}

// Grad returns the accumulated gradient d(root)/d(s) and whether it has
// been populated. It reports false until a Backward pass over a graph
// containing s has run, and again after ResetGrad.
func (s *Scalar) Grad() (float64, bool) {
	return s.grad, s.gradSet
}

// AddGrad accumulates g into the node's gradient, initializing the
// accumulator to zero first if it is unset. Accumulation, not overwrite,
// is the contract: a node with several descendants receives one
// contribution per descendant edge.
func (s *Scalar) AddGrad(g float64) {
	if !s.gradSet {
		s.grad = 0
		s.gradSet = true
	}
	s.grad += g
}

// Less reports whether s.Value() < o.Value(), so Scalars can participate
// in sorts and comparisons without unwrapping.
func (s *Scalar) Less(o *Scalar) bool {
	return s.value < o.value
}

// Greater reports whether s.Value() > o.Value().
func (s *Scalar) Greater(o *Scalar) bool {
	return s.value > o.value
}

// String renders the node for debugging: the bare value for a leaf, or
// "value = opname(in1,in2,...,k=v) <grad=...>" for a derived node. The
// rendering is deterministic: params appear in sorted key order.
func (s *Scalar) String() string {
	var b strings.Builder
	b.WriteString(formatFloat(s.value))
	if s.op != nil {
		b.WriteString(" = ")
		b.WriteString(s.op.Name())
		b.WriteByte('(')
		for i, in := range s.Inputs() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatFloat(in.value))
		}
		keys := make([]string, 0, len(s.params))
		for k := range s.params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			// Apply requires at least one input, so a comma always precedes.
			fmt.Fprintf(&b, ",%s=%s", k, formatFloat(s.params[k]))
		}
		b.WriteByte(')')
	}
	if s.gradSet {
		fmt.Fprintf(&b, " <grad=%s>", formatFloat(s.grad))
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
