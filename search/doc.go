// Package search implements the two exact drivers: BranchAndBound (C7) and
// BranchAndCut (C8). Both run depth-first recursion over an lpmodel.Model
// seeded by problem.Build, bounding with the LP relaxation and branching on
// the fractional variable closest to 1; BranchAndCut additionally separates
// violated independent-set cuts (separator.Find), purges slack constraints
// periodically, and repairs spurious integer "cliques" with lazy pair cuts.
//
// Both entry points share a single unexported engine and its dfs method
// (grounded on tsp/bb.go's bbEngine — "a dedicated engine struct instead of
// anonymous closures to keep dependencies explicit, testing simpler, and
// hot-path state predictable"), parameterized by a cut bool that gates the
// BnC-only behavior.
package search
