// Package heuristic implements C3: a randomized "smallest-degree-last with
// removal" greedy clique construction, used to seed the branch-and-bound /
// branch-and-cut incumbent.
//
// The outer driver is intentionally faithful to a documented quirk of the
// original implementation (preserved per spec.md §9, "Open questions /
// probable bugs in the source" — reproduce, don't fix): the recursive
// construction is invoked as a fresh "first call" every single time, at
// every level of the nested R x M loop, so no construction ever builds on
// the state of a previous one. The nested loop still performs R*M
// constructions, but since the M repetitions at a fixed randomization level
// are identically-distributed fresh samples rather than refinements, the
// search's effective strategy diversity is R, not R*M. See FindClique's
// doc comment.
package heuristic
