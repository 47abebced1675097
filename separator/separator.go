package separator

import (
	"github.com/Tikhobaev/Algorithm-labs/graph"
)

// Cut is a violated independent-set inequality: Σ_{v in Set} x_v <= 1 is cut
// by the fractional solution, since Weight (the LP value of that sum) is
// strictly greater than 1 (+ the caller's tolerance).
type Cut struct {
	Set    []int
	Weight float64
}

// Find looks for an independent set whose total weight exceeds 1+tau, trying
// two greedy orderings of the vertices and keeping whichever maximal
// independent set is heavier. weights is indexed by vertex id (1..g.Order()),
// weights[0] is ignored.
//
// ok is false when the heavier candidate's weight does not exceed 1+tau: no
// violated cut exists.
func Find(g *graph.Graph, weights []float64, tau float64) (cut Cut, ok bool) {
	setA, weightA := greedyMaximalSet(g, weights, orderByWeightDesc(g, weights))
	setB, weightB := greedyMaximalSet(g, weights, orderByWeightOverDegree(g, weights))

	best, bestWeight := setA, weightA
	if weightB > weightA {
		best, bestWeight = setB, weightB
	}

	if bestWeight <= 1+tau {
		return Cut{}, false
	}
	return Cut{Set: best, Weight: bestWeight}, true
}

// greedyMaximalSet walks vertices in the given order, greedily adding any
// vertex not yet excluded and excluding all of its neighbours.
func greedyMaximalSet(g *graph.Graph, weights []float64, order []int) ([]int, float64) {
	excluded := make([]bool, g.Order()+1)
	var result []int
	total := 0.0
	for _, v := range order {
		if excluded[v] {
			continue
		}
		result = append(result, v)
		total += weights[v]
		for _, u := range g.Neighbors(v) {
			excluded[u] = true
		}
	}
	return result, total
}

// orderByWeightDesc sorts vertices by weight descending (H1).
func orderByWeightDesc(g *graph.Graph, weights []float64) []int {
	order := g.Vertices()
	insertionSortByDesc(order, func(v int) float64 { return weights[v] })
	return order
}

// orderByWeightOverDegree sorts vertices by weight/(degree+1) descending
// (H2): vertices with high weight relative to how many others they exclude
// come first.
func orderByWeightOverDegree(g *graph.Graph, weights []float64) []int {
	order := g.Vertices()
	insertionSortByDesc(order, func(v int) float64 {
		return weights[v] / float64(g.Degree(v)+1)
	})
	return order
}

func insertionSortByDesc(a []int, key func(int) float64) {
	for i := 1; i < len(a); i++ {
		elem := a[i]
		k := key(elem)
		j := i - 1
		for j >= 0 && key(a[j]) < k {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = elem
	}
}
