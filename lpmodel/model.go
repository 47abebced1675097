package lpmodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SetObjective sets the objective coefficients (length must be NVars) and
// optimization direction. coeffs is copied.
func (m *Model) SetObjective(coeffs []float64, maximize bool) {
	copy(m.objective, coeffs)
	m.maximize = maximize
}

// SetBounds sets variable v's bounds to [lo, hi]. hi may be math.Inf(1) for
// "no upper bound".
func (m *Model) SetBounds(v int, lo, hi float64) error {
	if v < 0 || v >= m.nVars {
		return ErrInvalidVariable
	}
	m.lo[v] = lo
	m.hi[v] = hi
	return nil
}

// AddConstraint adds a named row Σ coeffs[v]*x_v {sense} rhs. isBranch tags
// the row as a branching equality so the search engine's slack-purge can
// skip it. Returns ErrDuplicateConstraint if name is already in use.
func (m *Model) AddConstraint(name string, coeffs map[int]float64, sense Sense, rhs float64, isBranch bool) error {
	if _, exists := m.byName[name]; exists {
		return ErrDuplicateConstraint
	}
	cp := make(map[int]float64, len(coeffs))
	for v, c := range coeffs {
		cp[v] = c
	}
	m.byName[name] = &constraint{name: name, coeffs: cp, sense: sense, rhs: rhs, isBranch: isBranch}
	m.order = append(m.order, name)
	return nil
}

// DeleteConstraint removes a previously-added constraint by name.
func (m *Model) DeleteConstraint(name string) error {
	if _, exists := m.byName[name]; !exists {
		return ErrUnknownConstraint
	}
	delete(m.byName, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ConstraintNames returns the active constraint names in insertion order.
func (m *Model) ConstraintNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// IsBranch reports whether name was added with isBranch=true. An unknown
// name reports false: callers only ever pass names obtained from
// ConstraintNames, so "unknown" and "not a branch row" are equivalent for
// the slack-purge's purposes.
func (m *Model) IsBranch(name string) bool {
	c, exists := m.byName[name]
	return exists && c.isBranch
}

// solveRow is one equality-form-pending row: either a user constraint or an
// internal upper-bound row. name is empty for internal rows (they are not
// reported back through SolveResult.Slack).
type solveRow struct {
	coeffs map[int]float64
	sense  Sense
	rhs    float64
	name   string
}

// Solve assembles the dense equality-standard-form LP (shifting each
// variable by its lower bound, folding finite upper bounds and every <=
// constraint into a slack column) and solves it via gonum's simplex. Any
// solver failure — infeasible, unbounded, singular, or otherwise — collapses
// to ErrNoBound: the caller's contract is "prune the subtree", not inspect
// the failure mode.
func (m *Model) Solve() (SolveResult, error) {
	n := m.nVars

	rows := make([]solveRow, 0, len(m.order)+n)
	for _, name := range m.order {
		c := m.byName[name]
		rows = append(rows, solveRow{coeffs: c.coeffs, sense: c.sense, rhs: c.rhs, name: name})
	}
	for v := 0; v < n; v++ {
		if !math.IsInf(m.hi[v], 1) {
			// rhs is m.hi[v], not m.hi[v]-m.lo[v]: the assembly loop below
			// subtracts coeff*m.lo[v] from every row's rhs exactly once to
			// shift into y-space, including this one. Pre-shifting here too
			// would double-subtract lo[v] whenever lo[v] != 0.
			rows = append(rows, solveRow{
				coeffs: map[int]float64{v: 1},
				sense:  LE,
				rhs:    m.hi[v],
			})
		}
	}

	nLE := 0
	for _, r := range rows {
		if r.sense == LE {
			nLE++
		}
	}
	totalVars := n + nLE
	totalRows := len(rows)

	c := make([]float64, totalVars)
	for v := 0; v < n; v++ {
		if m.maximize {
			c[v] = -m.objective[v]
		} else {
			c[v] = m.objective[v]
		}
	}

	A := mat.NewDense(totalRows, totalVars, nil)
	b := make([]float64, totalRows)

	slackCol := n
	for i, r := range rows {
		adj := r.rhs
		for v, coeff := range r.coeffs {
			A.Set(i, v, coeff)
			if m.lo[v] != 0 {
				adj -= coeff * m.lo[v]
			}
		}
		b[i] = adj
		if r.sense == LE {
			A.Set(i, slackCol, 1)
			slackCol++
		}
	}

	z, x, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		return SolveResult{}, ErrNoBound
	}

	primal := make([]float64, n)
	for v := 0; v < n; v++ {
		primal[v] = x[v] + m.lo[v]
	}

	obj := z
	if m.maximize {
		obj = -z
	}
	// Undo the lower-bound shift: objective·x = objective·y + objective·lo.
	for v := 0; v < n; v++ {
		obj += m.objective[v] * m.lo[v]
	}

	slack := make(map[string]float64, len(m.order))
	for _, r := range rows {
		if r.name == "" {
			continue
		}
		dot := 0.0
		for v, coeff := range r.coeffs {
			dot += coeff * primal[v]
		}
		slack[r.name] = r.rhs - dot
	}

	return SolveResult{ObjectiveValue: obj, Primal: primal, Slack: slack}, nil
}
