package coloring

import "errors"

// Sentinel errors for the coloring package.
var (
	// ErrUnknownStrategy is returned when Color is called with a Strategy
	// value outside the closed set of constants declared in this package.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")

	// ErrInvalidColoring indicates a produced coloring assigns the same
	// color to two adjacent vertices (an internal invariant violation).
	ErrInvalidColoring = errors.New("coloring: adjacent vertices share a color")
)
