// Package report writes the tabular per-instance record spec.md calls for:
// instance name, heuristic/search timings, and the clique found.
//
// No table or report library appears anywhere in the example pack; the
// original program's pandas.DataFrame.to_excel has no ecosystem analogue
// here. The format the spec contracts is the row shape, not the delivery
// mechanism, so this writes CSV via the standard library encoding/csv — the
// narrowest honest substitute, and a justified stdlib use (see DESIGN.md).
package report
