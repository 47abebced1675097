package coloring

// Strategy selects a coloring heuristic. The zero value is LargestFirst.
type Strategy int

const (
	// LargestFirst colors vertices in descending-degree order.
	LargestFirst Strategy = iota

	// RandomSequential colors vertices in a random order. Run repeatedly
	// (see RandomSequentialRepeats) to collect diverse colorings.
	RandomSequential

	// IndependentSet repeatedly extracts a maximal independent set from the
	// remaining uncolored vertices and assigns it the next color.
	IndependentSet

	// ConnectedSequentialBFS colors vertices in breadth-first-search order,
	// restarting BFS in each undiscovered connected component.
	ConnectedSequentialBFS

	// SaturationLargestFirst (DSATUR) repeatedly colors the uncolored
	// vertex with the most distinct colors among its colored neighbours,
	// breaking ties by residual degree.
	SaturationLargestFirst
)

// String implements fmt.Stringer for diagnostic output.
func (s Strategy) String() string {
	switch s {
	case LargestFirst:
		return "largest-first"
	case RandomSequential:
		return "random-sequential"
	case IndependentSet:
		return "independent-set"
	case ConnectedSequentialBFS:
		return "connected-sequential-bfs"
	case SaturationLargestFirst:
		return "saturation-largest-first"
	default:
		return "unknown"
	}
}

// RandomSequentialRepeats is the number of independent random passes the
// problem builder runs for Strategy RandomSequential to collect diverse
// independent sets.
const RandomSequentialRepeats = 40

// Coloring maps vertex id -> color id (small non-negative integers,
// contiguous from 0).
type Coloring map[int]int

// ColorClasses groups Coloring by color, each class sorted ascending, and
// the classes themselves returned in ascending color-id order.
func (c Coloring) ColorClasses() [][]int {
	byColor := make(map[int][]int)
	maxColor := -1
	for v, col := range c {
		byColor[col] = append(byColor[col], v)
		if col > maxColor {
			maxColor = col
		}
	}
	out := make([][]int, 0, maxColor+1)
	for col := 0; col <= maxColor; col++ {
		class := byColor[col]
		insertionSort(class)
		out = append(out, class)
	}
	return out
}

func insertionSort(a []int) {
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
