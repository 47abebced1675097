// Package graphio reads graphs in the DIMACS clique-benchmark text format
// (.clq/.col files): comment lines, a single "p edge N M" header, and "e u
// v" edge lines.
//
// This is an external collaborator, not part of the solver core: graph and
// search never import it, and no other package of this module does either.
// It turns a benchmark file into a *graph.Graph. No parsing library in the
// example pack targets this format, so the reader is hand-rolled on
// bufio.Scanner, following the field-splitting and edge-count-mismatch
// contract of the original read_graph_file routines.
package graphio
