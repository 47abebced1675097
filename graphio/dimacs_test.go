package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tikhobaev/Algorithm-labs/graphio"
)

func TestReadDIMACSK5(t *testing.T) {
	const src = `c a comment line
p edge 5 10
e 1 2
e 1 3
e 1 4
e 1 5
e 2 3
e 2 4
e 2 5
e 3 4
e 3 5
e 4 5
`
	g, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 5, g.Order())
	for u := 1; u <= 5; u++ {
		for v := u + 1; v <= 5; v++ {
			require.True(t, g.HasEdge(u, v))
		}
	}
}

func TestReadDIMACSCycle5(t *testing.T) {
	const src = `p edge 5 5
e 1 2
e 2 3
e 3 4
e 4 5
e 5 1
`
	g, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 5, g.Order())
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(1, 3))
}

func TestReadDIMACSToleratesDuplicateEdgeLines(t *testing.T) {
	const src = `p edge 3 3
e 1 2
e 1 2
e 2 3
`
	g, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 3))
}

func TestReadDIMACSEdgeCountMismatchIsFatal(t *testing.T) {
	const src = `p edge 3 3
e 1 2
e 2 3
`
	_, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.ErrorIs(t, err, graphio.ErrEdgeCountMismatch)
}

func TestReadDIMACSMissingHeaderIsFatal(t *testing.T) {
	const src = `e 1 2
`
	_, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.ErrorIs(t, err, graphio.ErrMissingHeader)
}

func TestReadDIMACSMalformedHeaderLine(t *testing.T) {
	const src = `p edge 3
e 1 2
`
	_, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.ErrorIs(t, err, graphio.ErrMalformedLine)
}

func TestReadDIMACSTwoDisjointTriangles(t *testing.T) {
	const src = `c two triangles
p edge 6 6
e 1 2
e 2 3
e 1 3
e 4 5
e 5 6
e 4 6
`
	g, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.False(t, g.HasEdge(1, 4))
}
