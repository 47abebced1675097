package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Tikhobaev/Algorithm-labs/graph"
)

// ReadDIMACS parses a DIMACS .clq/.col stream into a *graph.Graph.
//
// Lines starting with "c" are comments and ignored. A single
// "p edge <N> <M>" line declares the vertex count (ids 1..N) and the
// expected edge count. "e <u> <v>" lines add an undirected edge; duplicates
// are tolerated (AddEdge is idempotent). After the stream is exhausted, the
// number of "e" lines read must equal the header's M, or ErrEdgeCountMismatch
// is returned.
func ReadDIMACS(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var g *graph.Graph
	var declaredEdges int
	var seenHeader bool
	edgesRead := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			g, err = graph.NewGraph(n)
			if err != nil {
				return nil, fmt.Errorf("graphio: header declares %d vertices: %w", n, err)
			}
			declaredEdges = m
			seenHeader = true
		case 'e':
			if !seenHeader {
				return nil, ErrMissingHeader
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("graphio: edge {%d,%d}: %w", u, v, err)
			}
			edgesRead++
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading input: %w", err)
	}
	if !seenHeader {
		return nil, ErrMissingHeader
	}
	if edgesRead != declaredEdges {
		return nil, fmt.Errorf("%w: header declared %d, read %d", ErrEdgeCountMismatch, declaredEdges, edgesRead)
	}
	return g, nil
}
