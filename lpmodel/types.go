package lpmodel

// Sense is a constraint's relational operator.
type Sense int

const (
	// LE is the <= sense.
	LE Sense = iota
	// EQ is the = sense.
	EQ
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// constraint is one named row: Σ coeffs[v]*x_v {<=,=} rhs.
type constraint struct {
	name     string
	coeffs   map[int]float64
	sense    Sense
	rhs      float64
	isBranch bool
}

// SolveResult is the outcome of a successful Solve call.
type SolveResult struct {
	// ObjectiveValue is the (maximized) objective value at the optimum.
	ObjectiveValue float64

	// Primal holds one value per variable, indexed 0..nVars-1.
	Primal []float64

	// Slack maps each active constraint's name to rhs - coeffs.Primal,
	// i.e. how far the constraint is from being tight. EQ constraints
	// always report slack 0 (up to solver tolerance).
	Slack map[string]float64
}

// Model is an LP with nVars continuous variables, bounded per-variable, plus
// a named constraint set mutated by AddConstraint/DeleteConstraint. It is
// not safe for concurrent use; callers (the search engine) mutate it
// strictly nested with their own recursion.
type Model struct {
	nVars     int
	objective []float64 // length nVars
	maximize  bool
	lo, hi    []float64 // length nVars, variable bounds

	byName map[string]*constraint
	order  []string // insertion order, for deterministic row order on rebuild
}

// New allocates a Model with nVars variables, each bounded [0,1] by default
// and an all-zero objective (maximizing). Call SetObjective/SetBounds to
// configure before the first Solve.
func New(nVars int) *Model {
	lo := make([]float64, nVars)
	hi := make([]float64, nVars)
	for i := range hi {
		hi[i] = 1
	}
	return &Model{
		nVars:     nVars,
		objective: make([]float64, nVars),
		maximize:  true,
		lo:        lo,
		hi:        hi,
		byName:    make(map[string]*constraint),
	}
}

// NVars returns the number of variables.
func (m *Model) NVars() int { return m.nVars }
