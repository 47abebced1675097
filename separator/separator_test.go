package separator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tikhobaev/Algorithm-labs/graph"
	"github.com/Tikhobaev/Algorithm-labs/separator"
)

func k4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	for u := 1; u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	return g
}

func empty4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	return g
}

func TestFindOnCliqueNoViolatedCut(t *testing.T) {
	g := k4(t)
	weights := []float64{0, 0.6, 0.6, 0.6, 0.6}

	cut, ok := separator.Find(g, weights, 1e-6)
	require.False(t, ok)
	require.Len(t, cut.Set, 0)
}

func TestFindOnIndependentSetFindsViolatedCut(t *testing.T) {
	g := empty4(t)
	weights := []float64{0, 0.6, 0.6, 0.6, 0.6}

	cut, ok := separator.Find(g, weights, 1e-6)
	require.True(t, ok)
	require.Len(t, cut.Set, 4)
	require.InDelta(t, 2.4, cut.Weight, 1e-9)
}

func TestFindOnCliqueGreedyPicksSingleVertex(t *testing.T) {
	g := k4(t)
	weights := []float64{0, 0.6, 0.6, 0.6, 0.6}

	setA, weightA := func() ([]int, float64) {
		cut, _ := separator.Find(g, weights, -1) // force ok=true to inspect the raw greedy result
		return cut.Set, cut.Weight
	}()
	require.Len(t, setA, 1)
	require.InDelta(t, 0.6, weightA, 1e-9)
}
