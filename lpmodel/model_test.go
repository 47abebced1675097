package lpmodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tikhobaev/Algorithm-labs/lpmodel"
)

func TestSolveUnconstrainedBoxBounds(t *testing.T) {
	m := lpmodel.New(3)
	m.SetObjective([]float64{1, 1, 1}, true)

	res, err := m.Solve()
	require.NoError(t, err)
	require.InDelta(t, 3.0, res.ObjectiveValue, 1e-6)
	for _, x := range res.Primal {
		require.InDelta(t, 1.0, x, 1e-6)
	}
}

func TestSolveWithISConstraint(t *testing.T) {
	m := lpmodel.New(3)
	m.SetObjective([]float64{1, 1, 1}, true)
	require.NoError(t, m.AddConstraint("IS_1", map[int]float64{0: 1, 1: 1, 2: 1}, lpmodel.LE, 1, false))

	res, err := m.Solve()
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.ObjectiveValue, 1e-6)
	require.InDelta(t, 0.0, res.Slack["IS_1"], 1e-6)
}

func TestAddConstraintDuplicateName(t *testing.T) {
	m := lpmodel.New(2)
	require.NoError(t, m.AddConstraint("NE_1_2", map[int]float64{0: 1, 1: 1}, lpmodel.LE, 1, false))
	err := m.AddConstraint("NE_1_2", map[int]float64{0: 1, 1: 1}, lpmodel.LE, 1, false)
	require.ErrorIs(t, err, lpmodel.ErrDuplicateConstraint)
}

func TestDeleteConstraintRemovesRow(t *testing.T) {
	m := lpmodel.New(2)
	m.SetObjective([]float64{1, 1}, true)
	require.NoError(t, m.AddConstraint("NE_1_2", map[int]float64{0: 1, 1: 1}, lpmodel.LE, 1, false))

	before, err := m.Solve()
	require.NoError(t, err)
	require.InDelta(t, 1.0, before.ObjectiveValue, 1e-6)

	require.NoError(t, m.DeleteConstraint("NE_1_2"))
	require.Empty(t, m.ConstraintNames())

	after, err := m.Solve()
	require.NoError(t, err)
	require.InDelta(t, 2.0, after.ObjectiveValue, 1e-6)
}

func TestDeleteUnknownConstraint(t *testing.T) {
	m := lpmodel.New(1)
	err := m.DeleteConstraint("nope")
	require.ErrorIs(t, err, lpmodel.ErrUnknownConstraint)
}

func TestIsBranchTag(t *testing.T) {
	m := lpmodel.New(2)
	require.NoError(t, m.AddConstraint("Branch_0_1_0", map[int]float64{0: 1}, lpmodel.EQ, 1, true))
	require.NoError(t, m.AddConstraint("NE_0_1", map[int]float64{0: 1, 1: 1}, lpmodel.LE, 1, false))

	require.True(t, m.IsBranch("Branch_0_1_0"))
	require.False(t, m.IsBranch("NE_0_1"))
	require.False(t, m.IsBranch("unknown"))
}

func TestBranchEqualityFixesVariable(t *testing.T) {
	m := lpmodel.New(2)
	m.SetObjective([]float64{1, 1}, true)
	require.NoError(t, m.AddConstraint("Branch_x0_0", map[int]float64{0: 1}, lpmodel.EQ, 0, true))

	res, err := m.Solve()
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.Primal[0], 1e-6)
	require.InDelta(t, 1.0, res.Primal[1], 1e-6)
	require.InDelta(t, 1.0, res.ObjectiveValue, 1e-6)
}

func TestSetBoundsWithInfiniteUpperBound(t *testing.T) {
	m := lpmodel.New(1)
	m.SetObjective([]float64{1}, true)
	require.NoError(t, m.SetBounds(0, 0, math.Inf(1)))
	require.NoError(t, m.AddConstraint("cap", map[int]float64{0: 1}, lpmodel.LE, 5, false))

	res, err := m.Solve()
	require.NoError(t, err)
	require.InDelta(t, 5.0, res.Primal[0], 1e-6)
}

func TestSolveInfeasibleReturnsErrNoBound(t *testing.T) {
	m := lpmodel.New(1)
	m.SetObjective([]float64{1}, true)
	require.NoError(t, m.AddConstraint("lo", map[int]float64{0: 1}, lpmodel.EQ, 2, false))

	_, err := m.Solve()
	require.ErrorIs(t, err, lpmodel.ErrNoBound)
}

func TestSetBoundsOutOfRange(t *testing.T) {
	m := lpmodel.New(1)
	require.ErrorIs(t, m.SetBounds(5, 0, 1), lpmodel.ErrInvalidVariable)
}
