package heuristic

// Options configures FindClique. The zero value is not meaningful; use
// DefaultOptions().
type Options struct {
	// Randomization is R, the number of randomization levels in the outer
	// loop (level i draws a random index in 0..i, taken modulo the layer
	// size, when picking a random member of a minimum-degree layer).
	// Default 4.
	Randomization int

	// MaxIter is M, the number of constructions attempted per
	// randomization level. Default 10.
	MaxIter int

	// Seed seeds the deterministic RNG. Seed 0 uses a fixed default seed
	// (same convention as the rest of this module: seed==0 is
	// deterministic, not "random").
	Seed int64
}

// DefaultOptions returns R=4, M=10, Seed=0.
func DefaultOptions() Options {
	return Options{
		Randomization: 4,
		MaxIter:       10,
		Seed:          0,
	}
}

func (o Options) withDefaults() Options {
	if o.Randomization <= 0 {
		o.Randomization = 4
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 10
	}
	return o
}

// Result is the output of FindClique: the clique vertex list and its
// 0/1 (as float64, for direct use as an LP incumbent) indicator vector
// over 1..N.
type Result struct {
	Clique    []int
	Indicator []float64
}
