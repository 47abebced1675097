package lpmodel

import "errors"

// Sentinel errors for the lpmodel package.
var (
	// ErrNoBound is returned by Solve when the underlying simplex call
	// fails for any reason (infeasible, unbounded, singular, or any other
	// solver error). Per the caller contract, this means "no bound
	// available" and the subtree must be pruned rather than inspected
	// further.
	ErrNoBound = errors.New("lpmodel: no bound available")

	// ErrDuplicateConstraint is returned by AddConstraint when name is
	// already in use. Callers must DeleteConstraint first.
	ErrDuplicateConstraint = errors.New("lpmodel: constraint name already in use")

	// ErrUnknownConstraint is returned by DeleteConstraint when name has
	// never been added (or was already deleted).
	ErrUnknownConstraint = errors.New("lpmodel: unknown constraint name")

	// ErrInvalidVariable is returned by SetBounds when v is outside
	// [0, nVars).
	ErrInvalidVariable = errors.New("lpmodel: variable index out of range")
)
