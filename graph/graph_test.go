package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tikhobaev/Algorithm-labs/graph"
)

func k5(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(5)
	require.NoError(t, err)
	for u := 1; u <= 5; u++ {
		for v := u + 1; v <= 5; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	return g
}

func TestAddEdgeAndHasEdge(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1))
	require.False(t, g.HasEdge(1, 3))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, 1, g.Degree(2))
	require.Equal(t, 0, g.Degree(3))
}

func TestAddEdgeRejectsSelfLoopAndOutOfRange(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(1, 1), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(1, 5), graph.ErrVertexOutOfRange)
}

func TestNewGraphRejectsNonPositiveOrder(t *testing.T) {
	_, err := graph.NewGraph(0)
	require.ErrorIs(t, err, graph.ErrInvalidOrder)
}

func TestNonEdgesOnK5(t *testing.T) {
	g := k5(t)
	require.Empty(t, g.NonEdges())
}

func TestNonEdgesOnCycle5(t *testing.T) {
	// C5: 1-2-3-4-5-1. Non-edges are the 5 "diagonals".
	g, err := graph.NewGraph(5)
	require.NoError(t, err)
	cycle := [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}}
	for _, e := range cycle {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.Len(t, g.NonEdges(), 5)
}

func TestInducedSubgraphPreservesAdjacency(t *testing.T) {
	g := k5(t)
	sub, mapping, err := g.InducedSubgraph([]int{1, 3, 5})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, mapping)
	require.Equal(t, 3, sub.Order())
	// K5's induced subgraph on any subset is itself complete.
	require.Empty(t, sub.NonEdges())
}

func TestInducedSubgraphDropsExcludedEdges(t *testing.T) {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))
	sub, mapping, err := g.InducedSubgraph([]int{1, 2, 4})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, mapping)
	// new ids: 1->1, 2->2, 4->3. Only edge (1,2) survives.
	require.True(t, sub.HasEdge(1, 2))
	require.False(t, sub.HasEdge(2, 3))
	require.False(t, sub.HasEdge(1, 3))
}

func TestIsCliqueAndIsIndependentSet(t *testing.T) {
	g := k5(t)
	require.True(t, g.IsClique([]int{1, 2, 3}))
	require.False(t, g.IsIndependentSet([]int{1, 2}))

	indep, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.True(t, indep.IsIndependentSet([]int{1, 2, 3}))
	require.False(t, indep.IsClique([]int{1, 2, 3}))
}

func TestIsCliqueRejectsDuplicateVertex(t *testing.T) {
	g := k5(t)
	require.False(t, g.IsClique([]int{1, 1, 2}))
}

func TestComplementEdges(t *testing.T) {
	// K4 minus edge {3,4}: complement on {1,2,3,4} has exactly {3,4}.
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	for u := 1; u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			if (u == 3 && v == 4) {
				continue
			}
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	comp := g.ComplementEdges([]int{1, 2, 3, 4})
	require.Equal(t, []graph.Pair{{U: 3, V: 4}}, comp)
}
