package search

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Tikhobaev/Algorithm-labs/graph"
	"github.com/Tikhobaev/Algorithm-labs/lpmodel"
	"github.com/Tikhobaev/Algorithm-labs/separator"
)

// engine holds all search state and policy for one run of BranchAndBound or
// BranchAndCut. A dedicated struct (instead of closures bound over local
// variables) keeps the recursive dfs method's dependencies explicit and the
// hot-path state predictable, the same shape the teacher's TSP
// branch-and-bound engine uses.
type engine struct {
	model *lpmodel.Model
	g     *graph.Graph
	cut   bool // false: BnB: true: BnC

	tau               float64
	maxSepIter        int
	sepTol            float64
	maxStagnation     int
	maxRecursionDepth int
	slackPurgePeriod  int
	slackThreshold    float64
	logger            *log.Logger

	bestValue  int
	bestClique []int

	useDeadline bool
	deadline    time.Time
	timedOut    bool

	nodeVisits  int
	sepCounter  int
	weakCounter int

	// constrainedVars[v] is true while vertex v is fixed by an active
	// Branch_ equality on the current path. Only used in BnC mode (§9:
	// BnC's branch selection excludes these; BnB does not track this at
	// all, preserving the documented asymmetry).
	constrainedVars []bool
}

func (e *engine) checkDeadline() bool {
	if !e.useDeadline {
		return false
	}
	return time.Now().After(e.deadline)
}

func (e *engine) pruneByBound(objective float64) bool {
	return math.Floor(objective+e.tau) <= float64(e.bestValue)
}

func isIntegral(x, tau float64) bool {
	return math.Abs(x) <= tau || math.Abs(1-x) <= tau
}

func isAllIntegral(primal []float64, tau float64) bool {
	for _, x := range primal {
		if !isIntegral(x, tau) {
			return false
		}
	}
	return true
}

// verticesNear1 returns the 1-based vertex ids whose primal value is within
// tau of 1.
func verticesNear1(primal []float64, tau float64) []int {
	var out []int
	for i, x := range primal {
		if math.Abs(1-x) <= tau {
			out = append(out, i+1)
		}
	}
	return out
}

// pickBranchVar scans LP variable indices in order, skipping any vertex
// marked in excluded (nil to exclude nothing) and any variable already
// within tau of an integer, and returns the index whose value is closest to
// 1. Ties use "last seen wins" (<=), matching the documented stable sweep.
func (e *engine) pickBranchVar(primal []float64, excluded []bool) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, x := range primal {
		if excluded != nil && excluded[i+1] {
			continue
		}
		if isIntegral(x, e.tau) {
			continue
		}
		dist := math.Abs(1 - x)
		if dist <= bestDist {
			best, bestDist = i, dist
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

func (e *engine) updateIncumbent(clique []int) {
	e.bestValue = len(clique)
	e.bestClique = append([]int(nil), clique...)
}

// acceptIfClique implements BnB's integer-solution step: extract the
// candidate clique, verify it, and update the incumbent only if it beats the
// current best. A non-clique result here is an internal invariant violation
// (should not happen: BnB's constraint set always carries a pair or IS
// constraint for every non-edge) — it is logged and otherwise ignored; the
// node simply returns without branching further, since nothing is
// fractional.
func (e *engine) acceptIfClique(res lpmodel.SolveResult) {
	candidate := verticesNear1(res.Primal, e.tau)
	if !e.g.IsClique(candidate) {
		e.logger.Printf("search: integral solution is not a clique: %v", candidate)
		return
	}
	if math.Floor(res.ObjectiveValue) > float64(e.bestValue) {
		e.updateIncumbent(candidate)
	}
}

func (e *engine) purgeSlack(slack map[string]float64) {
	for name, s := range slack {
		if e.model.IsBranch(name) {
			continue
		}
		if s > e.slackThreshold {
			_ = e.model.DeleteConstraint(name)
		}
	}
}

func weightsFromPrimal(primal []float64) []float64 {
	w := make([]float64, len(primal)+1)
	for i, x := range primal {
		w[i+1] = x
	}
	return w
}

// separate runs the cutting-plane loop: repeatedly ask the separator for a
// violated independent-set inequality, add it as a never-rolled-back
// "Strong_" constraint, and re-solve, until no cut is found or one of the
// stopping rules fires. Returns ok=false if the node must be abandoned
// (solver failure, or the bound dropped at/below the incumbent mid-loop).
//
// The stagnation check is intentionally the signed form
// (prevObjective - objective < sepTol), not its absolute value: a
// re-optimization that makes the bound *worse* (rare, but possible) must not
// count as stagnation. This mirrors the source program's comparison exactly.
//
// One deliberate deviation from the source, not one of the four protected
// open questions: prevObjective is seeded from the node's pre-separation
// objective before the loop starts, so the stagnation and convergence checks
// are already live on the very first added cut. The Python source only runs
// both checks "if len(obj_value_history) > 0", i.e. never on the first cut of
// a node, so it cannot break out of the loop after just one. Here, a first
// cut that moves the objective by less than 1e-2 ends separation immediately.
// This changes the constraint stream relative to the source (fewer cuts on
// nodes where the first one is already small); kept because spec.md §4.5
// defines both checks as "vs the previous iteration" without excluding the
// first one, and a single extra early-exit path did not seem worth
// special-casing against the unified dfs skeleton.
func (e *engine) separate(res lpmodel.SolveResult) (lpmodel.SolveResult, bool) {
	prevObjective := res.ObjectiveValue
	stagnation := 0

	for iter := 0; iter < e.maxSepIter; iter++ {
		cut, found := separator.Find(e.g, weightsFromPrimal(res.Primal), e.tau)
		if !found {
			break
		}

		coeffs := make(map[int]float64, len(cut.Set))
		for _, v := range cut.Set {
			coeffs[v-1] = 1.0
		}
		name := fmt.Sprintf("Strong_%d", e.sepCounter)
		e.sepCounter++
		if err := e.model.AddConstraint(name, coeffs, lpmodel.LE, 1, false); err != nil {
			break
		}

		next, err := e.model.Solve()
		if err != nil {
			e.logger.Printf("search: LP solver failed during separation: %v", err)
			return lpmodel.SolveResult{}, false
		}
		res = next

		if e.pruneByBound(res.ObjectiveValue) {
			return res, false
		}

		if prevObjective-res.ObjectiveValue < e.sepTol {
			stagnation++
		} else {
			stagnation = 0
		}
		if stagnation >= e.maxStagnation {
			break
		}
		if math.Abs(prevObjective-res.ObjectiveValue) < 1e-2 {
			break
		}
		prevObjective = res.ObjectiveValue
	}

	return res, true
}

// repair implements BnC's weak-constraint repair: when no fractional unfixed
// variable remains, extract the near-integer candidate clique. If it really
// is a clique, accept it as a (possibly improved) incumbent. Otherwise, for
// every non-adjacent pair within the candidate, add a "Weak_" pair cut
// forcing the LP to abandon this spurious integral point, and recurse at the
// same logical node with depth+1 (the depth guard bounds this).
func (e *engine) repair(res lpmodel.SolveResult, depth int) {
	candidate := verticesNear1(res.Primal, e.tau)
	if e.g.IsClique(candidate) {
		if len(candidate) > e.bestValue {
			e.updateIncumbent(candidate)
		}
		return
	}

	for i, pair := range e.g.ComplementEdges(candidate) {
		name := fmt.Sprintf("Weak_%d_%d", e.weakCounter, i)
		_ = e.model.AddConstraint(name, map[int]float64{pair.U - 1: 1, pair.V - 1: 1}, lpmodel.LE, 1, false)
	}
	e.weakCounter++
	e.dfs(depth + 1)
}

func branchValue(x float64) int {
	if x >= 0.5 {
		return 1
	}
	return 0
}

// branchOn installs an equality x_v=beta for the two choices
// [round(x_v), 1-round(x_v)] in turn (the "likely 1" branch first when
// x_v>=0.5), recursing and rolling the constraint back afterward. Branch_
// constraints are always rolled back, unlike Strong_/Weak_.
func (e *engine) branchOn(v int, xv float64, depth int) {
	b := branchValue(xv)
	vertex := v + 1
	for _, beta := range [2]int{b, 1 - b} {
		name := fmt.Sprintf("Branch_%d_%d_%d", depth, beta, vertex)
		if err := e.model.AddConstraint(name, map[int]float64{v: 1}, lpmodel.EQ, float64(beta), true); err != nil {
			continue
		}
		if e.cut {
			e.constrainedVars[vertex] = true
		}

		e.dfs(depth + 1)

		if e.cut {
			e.constrainedVars[vertex] = false
		}
		_ = e.model.DeleteConstraint(name)
		if e.timedOut {
			return
		}
	}
}

// dfs is the single node-visitor shared by BnB and BnC, parameterized by
// e.cut. See search.go for the entry points.
func (e *engine) dfs(depth int) {
	if e.checkDeadline() {
		e.timedOut = true
		return
	}
	if e.cut && depth > e.maxRecursionDepth {
		return
	}
	e.nodeVisits++

	res, err := e.model.Solve()
	if err != nil {
		e.logger.Printf("search: LP solver failed at node: %v", err)
		return
	}

	if e.cut && e.nodeVisits%e.slackPurgePeriod == 0 {
		e.purgeSlack(res.Slack)
	}

	if e.pruneByBound(res.ObjectiveValue) {
		return
	}

	if !e.cut {
		if isAllIntegral(res.Primal, e.tau) {
			e.acceptIfClique(res)
			return
		}
	} else {
		var ok bool
		res, ok = e.separate(res)
		if !ok {
			return
		}
		if e.pruneByBound(res.ObjectiveValue) {
			return
		}
	}

	var excluded []bool
	if e.cut {
		excluded = e.constrainedVars
	}
	v, ok := e.pickBranchVar(res.Primal, excluded)
	if !ok {
		if e.cut {
			e.repair(res, depth)
		}
		return
	}

	e.branchOn(v, res.Primal[v], depth)
}
