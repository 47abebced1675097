package graph

// Pair is an unordered pair of vertex ids, always stored with U < V.
type Pair struct {
	U, V int
}

func makePair(a, b int) Pair {
	if a < b {
		return Pair{a, b}
	}
	return Pair{b, a}
}

// NonEdges returns every pair {u,v}, u<v, such that {u,v} is not an edge.
// Complexity: O(N^2) adjacency tests.
func (g *Graph) NonEdges() []Pair {
	out := make([]Pair, 0)
	for u := 1; u <= g.order; u++ {
		for v := u + 1; v <= g.order; v++ {
			if !g.HasEdge(u, v) {
				out = append(out, Pair{u, v})
			}
		}
	}
	return out
}

// InducedSubgraph builds the subgraph induced by vertex subset keep,
// renumbered 1..len(keep) in ascending order of the original ids. It
// returns the new graph along with a mapping from new id -> original id.
func (g *Graph) InducedSubgraph(keep []int) (*Graph, []int, error) {
	sub := append([]int(nil), keep...)
	sortInts(sub)
	sub = dedupSortedInts(sub)

	n := len(sub)
	if n == 0 {
		return nil, nil, ErrInvalidOrder
	}
	newGraph, err := NewGraph(n)
	if err != nil {
		return nil, nil, err
	}
	for i, u := range sub {
		if !g.inRange(u) {
			return nil, nil, ErrVertexOutOfRange
		}
		for j := i + 1; j < n; j++ {
			v := sub[j]
			if g.HasEdge(u, v) {
				_ = newGraph.AddEdge(i+1, j+1)
			}
		}
	}
	return newGraph, sub, nil
}

// ComplementEdges returns the non-edges of the subgraph induced by vertex
// subset verts: the pairs {u,v}, u<v, both in verts, with {u,v} not an edge
// of g. This is exactly the edge set of the complement of g[verts].
func (g *Graph) ComplementEdges(verts []int) []Pair {
	out := make([]Pair, 0)
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			u, v := verts[i], verts[j]
			if u == v {
				continue
			}
			if !g.HasEdge(u, v) {
				out = append(out, makePair(u, v))
			}
		}
	}
	return out
}

// IsClique reports whether vertex subset verts is pairwise adjacent in g:
// |E(g[verts])| == |verts|*(|verts|-1)/2.
func (g *Graph) IsClique(verts []int) bool {
	n := len(verts)
	if n <= 1 {
		return true
	}
	edges := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if verts[i] == verts[j] {
				return false // duplicate vertex: never a valid clique
			}
			if g.HasEdge(verts[i], verts[j]) {
				edges++
			}
		}
	}
	return edges == n*(n-1)/2
}

// IsIndependentSet reports whether vertex subset verts is pairwise
// non-adjacent in g.
func (g *Graph) IsIndependentSet(verts []int) bool {
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if g.HasEdge(verts[i], verts[j]) {
				return false
			}
		}
	}
	return true
}

// sortInts and dedupSortedInts are tiny local helpers to avoid pulling in
// sort.Ints at every call site with a throwaway closure.
func sortInts(a []int) {
	// insertion sort: subsets here are small (clique/IS sizes), and avoiding
	// sort.Ints keeps this file free of the sort import for a single use.
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

func dedupSortedInts(a []int) []int {
	if len(a) == 0 {
		return a
	}
	out := a[:1]
	for _, v := range a[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
