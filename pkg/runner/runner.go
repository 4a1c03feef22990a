// Package runner is the benchmark harness: it fans (problem, solver)
// cases out onto a fixed worker pool and tabulates the outcomes.
package runner

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yesoreyeram/thittam/pkg/config"
	"github.com/yesoreyeram/thittam/pkg/logging"
	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/solver"
)

// Case is one (problem, solver) pair of the benchmark matrix. Cases are
// numbered in matrix order so summaries stay stable regardless of which
// worker finishes first.
type Case struct {
	ID      int
	Problem *problem.Problem
	Driver  *solver.Driver
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the size of the worker pool. The default comes from
// config.Default().
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithStore sets the result store (default in-memory).
func WithStore(store Store) Option {
	return func(r *Runner) { r.store = store }
}

// WithSolverOptions passes extra options to every case's driver, e.g. a
// shared observer manager or time budget.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(r *Runner) { r.solverOpts = opts }
}

// Runner solves every problem with every algorithm on a bounded pool of
// workers. Each case gets its own driver, so solvers never share run
// state; the problems are immutable and shared by reference.
type Runner struct {
	cases      []Case
	workers    int
	logger     *logging.Logger
	store      Store
	solverOpts []solver.Option
}

// New builds the full problem x algorithm case matrix.
func New(problems []*problem.Problem, algorithms []solver.Algorithm, opts ...Option) (*Runner, error) {
	if len(problems) == 0 || len(algorithms) == 0 {
		return nil, ErrNoCases
	}

	r := &Runner{
		workers: config.Default().Workers,
		logger:  logging.New(logging.DefaultConfig()),
		store:   NewInMemoryStore(),
	}
	for _, opt := range opts {
		opt(r)
	}

	id := 0
	for _, p := range problems {
		for _, algo := range algorithms {
			r.cases = append(r.cases, Case{
				ID:      id,
				Problem: p,
				Driver:  solver.New(algo, r.solverOpts...),
			})
			id++
		}
	}
	return r, nil
}

// Cases returns the case matrix.
func (r *Runner) Cases() []Case {
	return r.cases
}

// Workers returns the worker pool size.
func (r *Runner) Workers() int {
	return r.workers
}

// Store returns the result store.
func (r *Runner) Store() Store {
	return r.store
}

// Run executes every case and returns the results in case order. Failed
// runs are recorded, not propagated; the per-case error lives in its
// Result.
func (r *Runner) Run(ctx context.Context) []Result {
	queue := make(chan Case, len(r.cases))
	for _, c := range r.cases {
		queue <- c
	}
	close(queue)

	var (
		mu      sync.Mutex
		results []Result
		wg      sync.WaitGroup
	)

	workers := r.workers
	if workers > len(r.cases) {
		workers = len(r.cases)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range queue {
				result := r.solveOne(ctx, c)
				mu.Lock()
				results = append(results, result)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a].CaseID < results[b].CaseID })
	return results
}

func (r *Runner) solveOne(ctx context.Context, c Case) Result {
	logger := r.logger.WithProblem(c.Problem.Name()).WithSolver(c.Driver.Name())
	logger.Info("case started", "case", c.ID)

	err := c.Driver.Solve(ctx, c.Problem)

	result := Result{
		CaseID:   c.ID,
		Problem:  c.Problem.Name(),
		Solver:   c.Driver.Name(),
		Optimum:  c.Problem.Optimum(),
		Solved:   c.Driver.Status(),
		Elapsed:  c.Driver.UserTime(),
		Err:      err,
		Finished: time.Now(),
	}
	result.Jobs, result.Machines = c.Problem.Scale()
	if sol := c.Driver.Solution(); sol != nil {
		result.Makespan = sol.Makespan()
	}

	r.store.Save(result)
	if result.Solved {
		logger.Info("case solved", "case", c.ID, "makespan", result.Makespan, "elapsed", result.Elapsed)
	} else {
		logger.Warn("case unsolved", "case", c.ID, "error", err, "elapsed", result.Elapsed)
	}
	return result
}
