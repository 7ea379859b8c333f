package scalar

import "sort"

// Trace returns every node reachable from x via inputs, x included,
// ordered by descending ID: the node constructed last comes first.
//
// Because a node's inputs always carry strictly smaller IDs, descending ID
// order is a valid reverse-topological order — every node appears before
// all of its inputs and after all of its descendants in the trace.
//
// Discovery is an iterative worklist DFS (no recursion, so arbitrarily
// deep graphs are fine) and visit-once: a node already discovered or
// already pending is never re-added, so diamonds are traced exactly once.
func Trace(x *Scalar) []*Scalar {
	g := x.graph
	seen := make([]bool, len(g.nodes))
	seen[x.id] = true
	pending := []*Scalar{x}
	nodes := make([]*Scalar, 0, 16)
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		nodes = append(nodes, n)
		for _, id := range n.inputs {
			if !seen[id] {
				seen[id] = true
				pending = append(pending, g.nodes[id])
			}
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].id > nodes[j].id })
	return nodes
}

// Backward computes d(x)/d(n) for every node n in x's graph that
// contributed to x, accumulating the result on each node's gradient.
//
// It seeds x's gradient with 1 (dx/dx), then visits Trace(x) in order —
// descendants strictly before their inputs — invoking the local-derivative
// step on every derived node. By the time a node is visited, all of its
// descendants in the trace have already contributed their share, so its
// gradient is final exactly when it is needed. Leaves simply retain their
// accumulated gradient.
//
// Gradients add across Backward calls; use ResetGrad between independent
// passes over overlapping subgraphs.
func Backward(x *Scalar) {
	x.grad = 1
	x.gradSet = true
	for _, n := range Trace(x) {
		if n.op != nil {
			n.propagate()
		}
	}
}

// ResetGrad sets the gradient of every node in Trace(x) back to unset.
func ResetGrad(x *Scalar) {
	for _, n := range Trace(x) {
		n.grad = 0
		n.gradSet = false
	}
}
