package search

import "errors"

// Sentinel errors for the search package.
var (
	// ErrEmptyGraph is returned when Order() == 0.
	ErrEmptyGraph = errors.New("search: graph has no vertices")
)
