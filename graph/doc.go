// Package graph is the in-memory representation of a simple undirected
// graph used throughout the clique solver.
//
// Vertices are 1-based integers in [1..N]. A Graph is populated with AddEdge
// after NewGraph returns; there is no RemoveEdge. Once handed to the
// downstream packages (coloring, heuristic, problem, separator, search) it
// is not mutated further, which lets them treat a *Graph as safe to share
// across recursive calls without locking.
//
// Adjacency is stored as a dense bitset per vertex rather than an adjacency
// map, since clique search repeatedly asks "are u and v adjacent?" and
// "what is the induced subgraph on this small vertex subset?" — O(1) per
// adjacency test and O(k^2) adjacency tests for a k-vertex subset, on the
// hot path of every branch-and-bound node.
package graph
