package scalar

// Graph is an arena owning every node of one computation graph. Node IDs
// index directly into the arena and double as construction-order sequence
// numbers, so each Graph carries its own counter and graphs are
// independently constructible and discardable.
//
// A Graph is not safe for concurrent use: at most one forward construction
// or backward/reset traversal may be active over it at a time.
type Graph struct {
	nodes []*Scalar
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make([]*Scalar, 0, 64)}
}

// Value creates a leaf node holding v: no producing operation, no inputs.
func (g *Graph) Value(v float64) *Scalar {
	s := &Scalar{graph: g, id: len(g.nodes), value: v}
	g.nodes = append(g.nodes, s)
	return s
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}
