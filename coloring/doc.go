// Package coloring is the coloring oracle (C2): given a graph and a
// strategy, it produces a proper vertex coloring whose color classes are
// independent sets.
//
// Strategy is a closed sum type rather than a reflective dispatch table —
// per the avoid-reflective-dispatch guidance carried from the source
// design: a single switch in Color, no registry, no interface
// plugins. Four of the five strategies are deterministic; RandomSequential
// is run RandomSequentialRepeats (40) times by the caller (problem package)
// to collect diverse colorings, since a single random pass rarely finds the
// same large color classes twice.
package coloring
