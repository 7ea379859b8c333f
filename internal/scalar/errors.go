package scalar

import "errors"

// Engine misuse errors. Apply and the backward machinery panic with these:
// each one is a programming error at the call site, not a recoverable
// condition.
var (
	ErrNoInputs       = errors.New("scalar: apply requires at least one input")
	ErrGraphMismatch  = errors.New("scalar: inputs belong to different graphs")
	ErrBadDerivatives = errors.New("scalar: backward formula returned wrong number of derivatives")
)
