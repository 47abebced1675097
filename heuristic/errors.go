package heuristic

import "errors"

// ErrNotAClique is returned by FindClique if the constructed candidate
// fails the post-hoc clique check (duplicate vertex, or a missing edge
// between two selected vertices). This should never happen if the
// construction in buildLayer is correct; it exists as a defensive invariant check, not a recoverable
// runtime condition callers are expected to handle differently than any
// other error.
var ErrNotAClique = errors.New("heuristic: constructed candidate is not a clique")
