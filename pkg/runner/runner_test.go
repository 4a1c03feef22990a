package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yesoreyeram/thittam/pkg/config"
	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/schedule"
	"github.com/yesoreyeram/thittam/pkg/solver"
	"github.com/yesoreyeram/thittam/pkg/types"
)

// brokenAlgorithm fails on every problem.
type brokenAlgorithm struct{}

func (a *brokenAlgorithm) Name() string { return "broken" }

func (a *brokenAlgorithm) Solve(context.Context, *problem.Problem, func(*schedule.Solution)) error {
	return schedule.ErrInfeasible
}

func testProblems(t *testing.T) []*problem.Problem {
	t.Helper()
	exact := 9.0
	p1, err := problem.New("p1", []types.Operation{
		types.NewOperation(0, 0, 3),
		types.NewOperation(0, 1, 2),
		types.NewOperation(1, 1, 4),
		types.NewOperation(1, 0, 1),
	})
	require.NoError(t, err)
	p2, err := problem.Random(3, 3, 9, 1, 9)
	require.NoError(t, err)
	return []*problem.Problem{p1.WithOptimum(types.Optimum{Exact: &exact}), p2}
}

func testAlgorithms(t *testing.T) []solver.Algorithm {
	t.Helper()
	spt, err := solver.NewPriorityDispatch("SPT")
	require.NoError(t, err)
	lpt, err := solver.NewPriorityDispatch("LPT")
	require.NoError(t, err)
	return []solver.Algorithm{spt, lpt}
}

func TestNewBuildsCaseMatrix(t *testing.T) {
	r, err := New(testProblems(t), testAlgorithms(t))
	require.NoError(t, err)
	require.Len(t, r.Cases(), 4)
	assert.Equal(t, config.Default().Workers, r.Workers())

	// matrix order: per problem, per algorithm
	assert.Equal(t, 0, r.Cases()[0].ID)
	assert.Equal(t, "p1", r.Cases()[0].Problem.Name())
	assert.Equal(t, "p1", r.Cases()[1].Problem.Name())

	_, err = New(nil, testAlgorithms(t))
	assert.ErrorIs(t, err, ErrNoCases)
	_, err = New(testProblems(t), nil)
	assert.ErrorIs(t, err, ErrNoCases)
}

func TestRun(t *testing.T) {
	r, err := New(testProblems(t), testAlgorithms(t), WithWorkers(2))
	require.NoError(t, err)

	results := r.Run(context.Background())
	require.Len(t, results, 4)

	for i, result := range results {
		assert.Equal(t, i, result.CaseID, "results must come back in case order")
		assert.True(t, result.Solved, "case %d unsolved: %v", i, result.Err)
		assert.Greater(t, result.Makespan, 0.0)
		assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
	}

	// every result landed in the store
	assert.Len(t, r.Store().List(), 4)
}

func TestRunRecordsFailures(t *testing.T) {
	r, err := New(testProblems(t)[:1], []solver.Algorithm{&brokenAlgorithm{}})
	require.NoError(t, err)

	results := r.Run(context.Background())
	require.Len(t, results, 1)
	assert.False(t, results[0].Solved)
	assert.ErrorIs(t, results[0].Err, schedule.ErrInfeasible)
}

func TestResultError(t *testing.T) {
	exact := 100.0
	result := Result{
		Solved:   true,
		Makespan: 115,
		Optimum:  types.Optimum{Exact: &exact},
	}
	assert.InDelta(t, 15.0, result.Error(), 1e-9)

	assert.Zero(t, Result{Solved: false}.Error())
	assert.Zero(t, Result{Solved: true, Makespan: 5}.Error())
}

func TestSummary(t *testing.T) {
	exact := 9.0
	results := []Result{
		{CaseID: 0, Problem: "p1", Solver: "spt", Jobs: 2, Machines: 2,
			Optimum: types.Optimum{Exact: &exact}, Solved: true, Makespan: 9},
		{CaseID: 1, Problem: "p1", Solver: "broken", Jobs: 2, Machines: 2,
			Solved: false},
	}

	table := Summary(results)
	assert.Contains(t, table, "Problem")
	assert.Contains(t, table, "p1")
	assert.Contains(t, table, "2 x 2")
	assert.Contains(t, table, "unsolved")
	assert.Contains(t, table, "0.0") // zero error for the exact hit
}

func TestInMemoryStore(t *testing.T) {
	store := NewInMemoryStore()

	id := store.Save(Result{Problem: "p1"})
	require.NotEmpty(t, id)

	got, ok := store.Load(id)
	require.True(t, ok)
	assert.Equal(t, "p1", got.Problem)
	assert.Equal(t, id, got.ID)

	_, ok = store.Load("missing")
	assert.False(t, ok)

	store.Save(Result{Problem: "p2"})
	assert.Len(t, store.List(), 2)
}
