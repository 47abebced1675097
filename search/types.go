package search

import (
	"io"
	"log"
	"time"
)

// Options configures BranchAndBound and BranchAndCut. The zero value is not
// meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// Tau is the integrality/rounding tolerance (abs_tol) used throughout:
	// bound pruning, fractional-variable detection, and clique extraction.
	Tau float64

	// TimeLimit bounds wall-clock search time. Zero means no limit.
	TimeLimit time.Duration

	// MaxSepIter caps separation-loop iterations per BnC node.
	MaxSepIter int

	// SepTol is the per-iteration minimum objective decrease below which an
	// iteration counts toward stagnation.
	SepTol float64

	// MaxStagnation is the number of consecutive low-improvement separation
	// iterations that stops the loop.
	MaxStagnation int

	// MaxRecursionDepth bounds BnC's recursion depth (both branching and
	// weak-constraint-repair recursion).
	MaxRecursionDepth int

	// SlackPurgePeriod is the node-visit interval at which BnC scans and
	// purges slack non-branch constraints.
	SlackPurgePeriod int

	// SlackThreshold is the minimum slack for a constraint to be purged.
	SlackThreshold float64

	// Seed seeds both the problem builder's RandomSequential coloring passes
	// and the seeding heuristic's randomization.
	Seed int64

	// Logger receives the diagnostic log lines this package emits: LP
	// solver failure (at a node or during separation), and an internal
	// invariant violation
	// (an integral BnB solution that is not actually a clique). Nil uses a
	// discarding logger.
	Logger *log.Logger
}

// DefaultOptions returns the tunable defaults: Tau=1e-4, TimeLimit=7000s,
// MaxSepIter=1000, SepTol=0.15, MaxStagnation=10, MaxRecursionDepth=100,
// SlackPurgePeriod=100, SlackThreshold=1e-3.
func DefaultOptions() Options {
	return Options{
		Tau:               1e-4,
		TimeLimit:         7000 * time.Second,
		MaxSepIter:        1000,
		SepTol:            0.15,
		MaxStagnation:     10,
		MaxRecursionDepth: 100,
		SlackPurgePeriod:  100,
		SlackThreshold:    1e-3,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Tau == 0 {
		o.Tau = d.Tau
	}
	if o.MaxSepIter == 0 {
		o.MaxSepIter = d.MaxSepIter
	}
	if o.SepTol == 0 {
		o.SepTol = d.SepTol
	}
	if o.MaxStagnation == 0 {
		o.MaxStagnation = d.MaxStagnation
	}
	if o.MaxRecursionDepth == 0 {
		o.MaxRecursionDepth = d.MaxRecursionDepth
	}
	if o.SlackPurgePeriod == 0 {
		o.SlackPurgePeriod = d.SlackPurgePeriod
	}
	if o.SlackThreshold == 0 {
		o.SlackThreshold = d.SlackThreshold
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Result is the outcome of a BranchAndBound/BranchAndCut run.
type Result struct {
	// Clique is the best clique found (vertex ids, not necessarily sorted).
	Clique []int

	// Value is len(Clique); kept alongside Clique per I3.
	Value int

	// TimedOut reports whether the search was cut short by TimeLimit. When
	// true, Clique/Value are still the best incumbent found so far (a valid,
	// if possibly non-optimal, clique).
	TimedOut bool
}
