// Package lpmodel owns an LP relaxation with one continuous variable per
// vertex, bounded 0≤x_v≤1, and a named, independently add/delete-able
// constraint set. It solves via gonum's equality-standard-form simplex
// (gonum.org/v1/gonum/optimize/convex/lp), rebuilding the dense A/b from its
// own constraint rows (plus slack columns for ≤ rows) on every Solve call —
// mirroring the inequality-to-equality conversion in the retrieved pack's
// MILP branch-and-bound example (convertToEqualities/combineInequalities),
// generalized here to support named constraints the caller can delete
// individually rather than only ever appending branch rows.
package lpmodel
