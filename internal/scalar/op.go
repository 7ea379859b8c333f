package scalar

// ForwardFunc computes an operation's result from its input values and
// named constants.
type ForwardFunc func(xs []float64, params Params) float64

// BackwardFunc computes one local partial derivative per positional input,
// in the same order and count as the forward inputs.
type BackwardFunc func(xs []float64, params Params) []float64

// Op is a named pair of pure functions: a forward evaluator and a backward
// evaluator producing the local derivative with respect to each input.
// Ops are stateless and safely shared by reference across any number of
// nodes.
//
// Raw evaluation and graph construction are separate, statically typed
// entry points: Eval operates on plain float64s with no side effect, while
// Apply consumes Scalars and appends one new node to their graph.
type Op struct {
	name     string
	forward  ForwardFunc
	backward BackwardFunc
}

// NewOp creates an operation from a display name, a forward formula, and
// the corresponding analytic derivative formula(s).
func NewOp(name string, forward ForwardFunc, backward BackwardFunc) *Op {
	return &Op{name: name, forward: forward, backward: backward}
}

// Name returns the operation's display name.
func (op *Op) Name() string {
	return op.name
}

// String returns "Name()".
func (op *Op) String() string {
	return op.name + "()"
}

// Eval computes the forward formula on plain values. Purely functional:
// no node is created and no graph is touched.
func (op *Op) Eval(xs ...float64) float64 {
	return op.forward(xs, nil)
}

// EvalWith is Eval with named constants.
func (op *Op) EvalWith(params Params, xs ...float64) float64 {
	return op.forward(xs, params)
}

// Apply evaluates the forward formula on the inputs' values and appends a
// new node to their graph, linked back to the inputs in call order. This
// is the sole graph-construction mechanism besides Graph.Value.
//
// Apply panics with ErrNoInputs when called with no inputs and with
// ErrGraphMismatch when the inputs belong to different graphs.
func (op *Op) Apply(inputs ...*Scalar) *Scalar {
	return op.ApplyWith(nil, inputs...)
}

// ApplyWith is Apply with named constants. The params map is copied, so
// the caller may reuse it.
func (op *Op) ApplyWith(params Params, inputs ...*Scalar) *Scalar {
	if len(inputs) == 0 {
		panic(ErrNoInputs)
	}
	g := inputs[0].graph
	xs := make([]float64, len(inputs))
	ids := make([]int, len(inputs))
	for i, in := range inputs {
		if in.graph != g {
			panic(ErrGraphMismatch)
		}
		xs[i] = in.value
		ids[i] = in.id
	}
	var ps Params
	if len(params) > 0 {
		ps = make(Params, len(params))
		for k, v := range params {
			ps[k] = v
		}
	}
	s := &Scalar{
		graph:  g,
		id:     len(g.nodes),
		value:  op.forward(xs, ps),
		op:     op,
		inputs: ids,
		params: ps,
	}
	g.nodes = append(g.nodes, s)
	return s
}

// propagate runs the local-derivative step for a node produced by an Op:
// it evaluates the backward formula on the input values and pushes
// grad * d onto each input. The node's own gradient must already be
// final, which Backward guarantees by visiting nodes in reverse
// topological order.
func (s *Scalar) propagate() {
	ins := s.Inputs()
	xs := make([]float64, len(ins))
	for i, in := range ins {
		xs[i] = in.value
	}
	ds := s.op.backward(xs, s.params)
	if len(ds) != len(ins) {
		panic(ErrBadDerivatives)
	}
	for i, d := range ds {
		ins[i].AddGrad(s.grad * d)
	}
}
