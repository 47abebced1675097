package coloring

import (
	"math/rand"

	"github.com/Tikhobaev/Algorithm-labs/graph"
)

// Color produces a proper vertex coloring of g under strategy s.
//
// rng is only consulted by RandomSequential; it may be nil for every other
// strategy (and rng==nil for RandomSequential falls back to a source with
// the fixed seed 1, so the result is still deterministic).
func Color(g *graph.Graph, s Strategy, rng *rand.Rand) (Coloring, error) {
	switch s {
	case LargestFirst:
		return colorByOrder(g, orderByDegreeDesc(g)), nil
	case RandomSequential:
		return colorByOrder(g, orderRandom(g, rng)), nil
	case IndependentSet:
		return colorByIndependentSets(g), nil
	case ConnectedSequentialBFS:
		return colorByOrder(g, orderConnectedBFS(g)), nil
	case SaturationLargestFirst:
		return colorSaturationLargestFirst(g), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// Verify reports whether every edge of g has differently colored endpoints.
func Verify(g *graph.Graph, c Coloring) error {
	for v := 1; v <= g.Order(); v++ {
		cv, ok := c[v]
		if !ok {
			return ErrInvalidColoring
		}
		for _, u := range g.Neighbors(v) {
			if u <= v {
				continue
			}
			if c[u] == cv {
				return ErrInvalidColoring
			}
		}
	}
	return nil
}

// colorByOrder assigns, to each vertex in order, the smallest color id not
// already used by a previously-colored neighbour (classic greedy first-fit
// coloring, parameterized only by vertex order).
func colorByOrder(g *graph.Graph, order []int) Coloring {
	n := g.Order()
	out := make(Coloring, n)
	used := make([]bool, n+1) // reused scratch, cleared per vertex below its own bound
	for _, v := range order {
		for i := range used {
			used[i] = false
		}
		for _, u := range g.Neighbors(v) {
			if col, ok := out[u]; ok {
				used[col] = true
			}
		}
		col := 0
		for used[col] {
			col++
		}
		out[v] = col
	}
	return out
}

// orderByDegreeDesc returns vertices sorted by descending degree, ties
// broken by ascending vertex id (deterministic).
func orderByDegreeDesc(g *graph.Graph) []int {
	order := g.Vertices()
	insertionSortBy(order, func(a, b int) bool {
		da, db := g.Degree(a), g.Degree(b)
		if da != db {
			return da > db
		}
		return a < b
	})
	return order
}

// orderRandom returns a random permutation of the vertices.
func orderRandom(g *graph.Graph, rng *rand.Rand) []int {
	order := g.Vertices()
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	for i := len(order) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// orderConnectedBFS returns vertices in breadth-first order, restarting in
// ascending-id order whenever the current component is exhausted.
func orderConnectedBFS(g *graph.Graph) []int {
	n := g.Order()
	visited := make([]bool, n+1)
	order := make([]int, 0, n)
	for start := 1; start <= n; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, u := range g.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
	}
	return order
}

// colorByIndependentSets repeatedly extracts a maximal independent set from
// the uncolored vertices (greedily: the candidate with the fewest neighbours
// still among the candidates joins first, removing itself and its
// neighbours from candidacy) and assigns it the next color. Every extracted set is
// independent by construction, so vertices in different rounds are the
// only ones that can share an edge, and they always receive different
// color ids.
func colorByIndependentSets(g *graph.Graph) Coloring {
	n := g.Order()
	out := make(Coloring, n)
	remaining := make(map[int]bool, n)
	for v := 1; v <= n; v++ {
		remaining[v] = true
	}
	color := 0
	for len(remaining) > 0 {
		candidates := make(map[int]bool, len(remaining))
		for v := range remaining {
			candidates[v] = true
		}
		for len(candidates) > 0 {
			pick := minDegreeWithin(g, candidates)
			out[pick] = color
			delete(candidates, pick)
			delete(remaining, pick)
			for _, u := range g.Neighbors(pick) {
				delete(candidates, u)
			}
		}
		color++
	}
	return out
}

// minDegreeWithin returns the vertex in candidates with the fewest
// neighbours also in candidates, ties broken by smallest vertex id.
func minDegreeWithin(g *graph.Graph, candidates map[int]bool) int {
	best, bestDeg := -1, -1
	for v := range candidates {
		d := 0
		for _, u := range g.Neighbors(v) {
			if candidates[u] {
				d++
			}
		}
		if best == -1 || d < bestDeg || (d == bestDeg && v < best) {
			best, bestDeg = v, d
		}
	}
	return best
}

// colorSaturationLargestFirst implements DSATUR: repeatedly color the
// uncolored vertex with the largest saturation degree (number of distinct
// colors among its colored neighbours), breaking ties by residual degree
// (number of uncolored neighbours) and then by vertex id.
func colorSaturationLargestFirst(g *graph.Graph) Coloring {
	n := g.Order()
	out := make(Coloring, n)
	colored := make([]bool, n+1)
	neighborColors := make([]map[int]bool, n+1)
	for v := 1; v <= n; v++ {
		neighborColors[v] = make(map[int]bool)
	}

	for done := 0; done < n; done++ {
		best, bestSat, bestDeg := -1, -1, -1
		for v := 1; v <= n; v++ {
			if colored[v] {
				continue
			}
			sat := len(neighborColors[v])
			deg := 0
			for _, u := range g.Neighbors(v) {
				if !colored[u] {
					deg++
				}
			}
			if best == -1 || sat > bestSat || (sat == bestSat && deg > bestDeg) ||
				(sat == bestSat && deg == bestDeg && v < best) {
				best, bestSat, bestDeg = v, sat, deg
			}
		}

		used := make(map[int]bool)
		for c := range neighborColors[best] {
			used[c] = true
		}
		col := 0
		for used[col] {
			col++
		}
		out[best] = col
		colored[best] = true
		for _, u := range g.Neighbors(best) {
			if !colored[u] {
				neighborColors[u][col] = true
			}
		}
	}
	return out
}

func insertionSortBy(a []int, less func(a, b int) bool) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && less(key, a[j]) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
