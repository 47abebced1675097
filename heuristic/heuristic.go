package heuristic

import (
	"math/rand"

	"github.com/Tikhobaev/Algorithm-labs/graph"
)

type candidate struct {
	v      int
	degree int
}

// FindClique builds a randomized greedy clique by repeatedly peeling the
// minimum-residual-degree layer off the candidate set, recursing on what's
// left, and on the way back up (from smallest layer to largest) adding a
// random member of each peeled layer plus any other member of that layer
// still adjacent to everything accumulated so far.
//
// The outer loop is a direct port of the original two-level driver
// (R randomization levels x M constructions per level), and it carries over
// a quirk of that original rather than fixing it: the recursive construction
// always runs with its "first call" flag set, so every one of the R*M
// constructions starts over from the full vertex set — nothing from a
// previous construction, at the same level or an earlier one, carries
// forward. The R*M trials are therefore genuine independent samples, but the
// only thing that actually varies the search *strategy* across them is the
// randomization level i (0..R-1), which sets the range 0..i of the random
// draw (taken modulo the layer size) used when picking a random member of
// each peeled layer; the M repetitions at a fixed level are repeated
// sampling over that same range, not progressive refinement. So the
// effective diversity of the search is R, not R*M, even though R*M
// constructions are performed. No test observes the construction count.
func FindClique(g *graph.Graph, opts Options) (Result, error) {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	var best []int
	for i := 0; i < opts.Randomization; i++ {
		for j := 0; j < opts.MaxIter; j++ {
			clique := constructOnce(g, i, rng)
			if len(clique) > len(best) {
				best = clique
			}
		}
	}

	if err := verifyClique(g, best); err != nil {
		return Result{}, err
	}
	return Result{Clique: best, Indicator: indicatorFor(g.Order(), best)}, nil
}

func constructOnce(g *graph.Graph, randomization int, rng *rand.Rand) []int {
	var clique []int
	buildLayer(g, randomization, nil, &clique, rng, true)
	return clique
}

func initialCandidates(g *graph.Graph) []candidate {
	n := g.Order()
	cands := make([]candidate, n)
	for v := 1; v <= n; v++ {
		cands[v-1] = candidate{v: v, degree: g.Degree(v)}
	}
	sortCandidatesDescByDegree(cands)
	return cands
}

// buildLayer is the recursive construction step. On the first call of a
// construction (firstIter) it ignores whatever candidates/clique it was
// handed and starts fresh from the whole graph; on recursive calls it
// recomputes each candidate's degree restricted to the still-remaining
// candidate set, peels off the resulting minimum-degree layer, recurses on
// the rest, and then greedily extends the clique with members of the peeled
// layer.
func buildLayer(g *graph.Graph, randomization int, candidates []candidate, clique *[]int, rng *rand.Rand, firstIter bool) {
	if !firstIter && len(candidates) == 1 {
		*clique = append(*clique, candidates[0].v)
		return
	}

	if firstIter {
		candidates = initialCandidates(g)
		*clique = nil
	} else {
		remaining := make(map[int]bool, len(candidates))
		for _, c := range candidates {
			remaining[c.v] = true
		}
		for i := range candidates {
			deg := 0
			for _, u := range g.Neighbors(candidates[i].v) {
				if remaining[u] {
					deg++
				}
			}
			candidates[i].degree = deg
		}
		sortCandidatesDescByDegree(candidates)
	}

	minDegree := candidates[len(candidates)-1].degree
	index := 0
	for i := 0; i < len(candidates); i++ {
		c := candidates[len(candidates)-1-i]
		if c.degree == minDegree {
			index = i
		} else {
			break
		}
	}
	removed := candidates[len(candidates)-1-index:]
	remaining := candidates[:len(candidates)-index-1]

	if len(remaining) > 0 {
		buildLayer(g, randomization, remaining, clique, rng, false)
	}

	pick := removed[rng.Intn(randomization+1)%len(removed)].v
	if allAdjacentToClique(g, pick, *clique) {
		*clique = append(*clique, pick)
	}
	for _, c := range removed {
		v := c.v
		if containsInt(*clique, v) {
			continue
		}
		if allAdjacentToClique(g, v, *clique) {
			*clique = append(*clique, v)
		}
	}
}

// allAdjacentToClique reports whether v is adjacent to every member of
// clique other than itself.
func allAdjacentToClique(g *graph.Graph, v int, clique []int) bool {
	for _, m := range clique {
		if m == v {
			continue
		}
		if !g.HasEdge(v, m) {
			return false
		}
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func sortCandidatesDescByDegree(c []candidate) {
	for i := 1; i < len(c); i++ {
		key := c[i]
		j := i - 1
		for j >= 0 && c[j].degree < key.degree {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = key
	}
}

func verifyClique(g *graph.Graph, clique []int) error {
	if !g.IsClique(clique) {
		return ErrNotAClique
	}
	return nil
}

func indicatorFor(n int, clique []int) []float64 {
	out := make([]float64, n+1)
	for _, v := range clique {
		out[v] = 1.0
	}
	return out
}
