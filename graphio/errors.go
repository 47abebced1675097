package graphio

import "errors"

// Sentinel errors for the graphio package.
var (
	// ErrMissingHeader is returned when no "p edge N M" line was seen before
	// EOF or before the first edge line.
	ErrMissingHeader = errors.New("graphio: missing \"p edge\" header line")

	// ErrMalformedLine is returned for a "p" or "e" line that does not
	// tokenize into the expected fields.
	ErrMalformedLine = errors.New("graphio: malformed input line")

	// ErrEdgeCountMismatch is returned when the number of "e" lines actually
	// read does not equal the count declared in the header.
	ErrEdgeCountMismatch = errors.New("graphio: edge count does not match header")
)
