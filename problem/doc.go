// Package problem builds the LP relaxation of a graph's clique polytope: one
// variable per vertex, IS constraints from every coloring strategy's large
// color classes, and non-edge pair constraints for any non-edge not already
// dominated by a selected independent set. Grounded on
// original_source/BnB/problem.py's design_problem/_create_constraints/
// _get_independent_sets, re-expressed against lpmodel.Model instead of a
// direct cplex.Cplex handle.
package problem
