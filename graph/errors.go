package graph

import "errors"

// Sentinel errors for the graph package.
var (
	// ErrInvalidOrder indicates a non-positive vertex count was requested.
	ErrInvalidOrder = errors.New("graph: order must be positive")

	// ErrVertexOutOfRange indicates a vertex id outside [1..Order()].
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge was requested between a vertex and itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
)
