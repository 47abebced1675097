// Package separator implements the weighted independent-set cut separator:
// given fractional LP weights over the vertices, it looks for an independent
// set whose weight exceeds 1 by more than a tolerance, which is a violated
// valid inequality for the clique polytope (Σx_v <= 1 over any independent
// set). Two greedy orderings are tried and the heavier result returned,
// grounded on original_source/weighted_set/main.py and BnC/separator.py.
package separator
