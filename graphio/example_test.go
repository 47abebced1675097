package graphio_test

import (
	"fmt"
	"strings"

	"github.com/Tikhobaev/Algorithm-labs/graphio"
)

// ExampleReadDIMACS parses a 5-cycle from DIMACS text and checks a couple of
// adjacencies.
func ExampleReadDIMACS() {
	const src = `c a 5-cycle
p edge 5 5
e 1 2
e 2 3
e 3 4
e 4 5
e 5 1
`
	g, err := graphio.ReadDIMACS(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.HasEdge(1, 2), g.HasEdge(1, 3))
	// Output:
	// 5 true false
}
