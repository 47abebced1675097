package search

import (
	"math/rand"
	"time"

	"github.com/Tikhobaev/Algorithm-labs/graph"
	"github.com/Tikhobaev/Algorithm-labs/heuristic"
	"github.com/Tikhobaev/Algorithm-labs/problem"
)

// BranchAndBound runs the plain branch-and-bound driver (C7): LP-relaxation
// bounding and fractional branching, no cutting planes.
func BranchAndBound(g *graph.Graph, opts Options) (Result, error) {
	return run(g, opts, false)
}

// BranchAndCut runs the branch-and-cut driver (C8): BranchAndBound plus a
// cutting-plane separation loop, periodic slack purging, and lazy
// weak-constraint repair of spurious integral "cliques".
func BranchAndCut(g *graph.Graph, opts Options) (Result, error) {
	return run(g, opts, true)
}

func run(g *graph.Graph, opts Options, cut bool) (Result, error) {
	if g.Order() == 0 {
		return Result{}, ErrEmptyGraph
	}
	opts = opts.withDefaults()

	model, err := problem.Build(g, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return Result{}, err
	}

	seed, err := heuristic.FindClique(g, heuristic.Options{Seed: opts.Seed})
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		model:             model,
		g:                 g,
		cut:               cut,
		tau:               opts.Tau,
		maxSepIter:        opts.MaxSepIter,
		sepTol:            opts.SepTol,
		maxStagnation:     opts.MaxStagnation,
		maxRecursionDepth: opts.MaxRecursionDepth,
		slackPurgePeriod:  opts.SlackPurgePeriod,
		slackThreshold:    opts.SlackThreshold,
		logger:            opts.Logger,
		bestValue:         len(seed.Clique),
		bestClique:        append([]int(nil), seed.Clique...),
	}
	if cut {
		e.constrainedVars = make([]bool, g.Order()+1)
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.dfs(0)

	return Result{
		Clique:   e.bestClique,
		Value:    e.bestValue,
		TimedOut: e.timedOut,
	}, nil
}
