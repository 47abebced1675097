package problem

import (
	"fmt"
	"math/rand"

	"github.com/Tikhobaev/Algorithm-labs/coloring"
	"github.com/Tikhobaev/Algorithm-labs/graph"
	"github.com/Tikhobaev/Algorithm-labs/lpmodel"
)

const minIndependentSetSize = 3

var strategies = []coloring.Strategy{
	coloring.LargestFirst,
	coloring.RandomSequential,
	coloring.IndependentSet,
	coloring.ConnectedSequentialBFS,
	coloring.SaturationLargestFirst,
}

// Build runs every coloring strategy over g, collects the resulting color
// classes of size >= 3 as independent-set cuts (deduplicated), drops any
// non-edge already covered by one of those sets, and returns an lpmodel.Model
// with one variable per vertex (objective all-ones, maximize, bounds [0,1])
// and the surviving IS/NE constraints.
//
// rng seeds the 40 RandomSequential colorings; pass nil for the package's
// default deterministic seed.
func Build(g *graph.Graph, rng *rand.Rand) (*lpmodel.Model, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	sets, err := independentSets(g, rng)
	if err != nil {
		return nil, err
	}

	m := lpmodel.New(g.Order())
	obj := make([]float64, g.Order())
	for i := range obj {
		obj[i] = 1.0
	}
	m.SetObjective(obj, true)

	for i, s := range sets {
		coeffs := make(map[int]float64, len(s))
		for _, v := range s {
			coeffs[v-1] = 1.0
		}
		name := fmt.Sprintf("IS_%d", i)
		if err := m.AddConstraint(name, coeffs, lpmodel.LE, 1, false); err != nil {
			return nil, err
		}
	}

	for _, pair := range g.NonEdges() {
		if coveredByAnySet(sets, pair.U, pair.V) {
			continue
		}
		name := fmt.Sprintf("NE_%d_%d", pair.U, pair.V)
		coeffs := map[int]float64{pair.U - 1: 1.0, pair.V - 1: 1.0}
		if err := m.AddConstraint(name, coeffs, lpmodel.LE, 1, false); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// independentSets collects every strategy's color classes of size >= 3,
// running RandomSequential coloring.RandomSequentialRepeats times, and
// deduplicates identical vertex sets (regardless of which strategy or
// repetition produced them).
func independentSets(g *graph.Graph, rng *rand.Rand) ([][]int, error) {
	seen := make(map[string]bool)
	var out [][]int

	addClasses := func(c coloring.Coloring) {
		for _, class := range c.ColorClasses() {
			if len(class) < minIndependentSetSize {
				continue
			}
			key := setKey(class)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, class)
		}
	}

	for _, s := range strategies {
		if s == coloring.RandomSequential {
			for i := 0; i < coloring.RandomSequentialRepeats; i++ {
				c, err := coloring.Color(g, s, rng)
				if err != nil {
					return nil, err
				}
				addClasses(c)
			}
			continue
		}
		c, err := coloring.Color(g, s, rng)
		if err != nil {
			return nil, err
		}
		addClasses(c)
	}

	return out, nil
}

func setKey(vertices []int) string {
	key := make([]byte, 0, len(vertices)*4)
	for _, v := range vertices {
		key = append(key, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return string(key)
}

func coveredByAnySet(sets [][]int, u, v int) bool {
	for _, s := range sets {
		hasU, hasV := false, false
		for _, x := range s {
			if x == u {
				hasU = true
			}
			if x == v {
				hasV = true
			}
		}
		if hasU && hasV {
			return true
		}
	}
	return false
}
