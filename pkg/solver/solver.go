// Package solver hosts the pluggable solvers of the framework and the run
// driver that executes them: worker goroutine, time budget, improvement
// reporting and run bookkeeping.
package solver

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yesoreyeram/thittam/pkg/logging"
	"github.com/yesoreyeram/thittam/pkg/observer"
	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/schedule"
)

// Algorithm is the strategy a Driver runs: it explores schedules for one
// problem and reports every improved solution through report. The
// reported solution is borrowed for the duration of the call; consumers
// that keep it must clone.
type Algorithm interface {
	// Name identifies the algorithm in logs, events and summaries.
	Name() string

	// Solve works on the problem until done, cancelled or failed.
	Solve(ctx context.Context, p *problem.Problem, report func(*schedule.Solution)) error
}

// Callback receives every improved solution on the worker goroutine. It
// must not retain the solution past the call.
type Callback func(*schedule.Solution)

// Option configures a Driver.
type Option func(*Driver)

// WithMaxTime bounds the wall-clock time of a run. Zero means unlimited.
func WithMaxTime(d time.Duration) Option {
	return func(drv *Driver) { drv.maxTime = d }
}

// WithCallback registers the improvement callback.
func WithCallback(cb Callback) Option {
	return func(drv *Driver) { drv.callback = cb }
}

// WithObservers attaches an observer manager receiving run events.
func WithObservers(mgr *observer.Manager) Option {
	return func(drv *Driver) { drv.observers = mgr }
}

// WithLogger sets the structured logger for run lifecycle messages.
func WithLogger(logger *logging.Logger) Option {
	return func(drv *Driver) { drv.logger = logger }
}

// Driver executes an Algorithm as one exclusive run at a time. It owns
// the run bookkeeping the benchmark harness consumes: status, user time
// and the best solution seen.
type Driver struct {
	algorithm Algorithm
	maxTime   time.Duration
	callback  Callback
	observers *observer.Manager
	logger    *logging.Logger

	mu       sync.Mutex
	running  bool
	status   bool
	userTime time.Duration
	solution *schedule.Solution

	// current run context, set while running
	runID      string
	runProblem string
	runLogger  *logging.Logger
	runStart   time.Time
	runCtx     context.Context
}

// New creates a driver around an algorithm.
func New(algorithm Algorithm, opts ...Option) *Driver {
	drv := &Driver{
		algorithm: algorithm,
		observers: observer.NewManager(),
		logger:    logging.New(logging.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(drv)
	}
	return drv
}

// Name returns the algorithm name.
func (d *Driver) Name() string {
	return d.algorithm.Name()
}

// IsRunning reports whether a run is in flight.
func (d *Driver) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Status reports the outcome of the last run: true when the algorithm
// terminated without error after reporting at least one solution.
func (d *Driver) Status() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// UserTime returns the wall-clock duration of the last run.
func (d *Driver) UserTime() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.userTime
}

// Solution returns the last improved solution, or nil if none was
// reported. After a failed run this is the best solution seen before the
// failure, if any.
func (d *Driver) Solution() *schedule.Solution {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.solution
}

// Solve runs the algorithm on the problem and returns when the worker
// finishes. Improvement callbacks and observer events run on the worker
// goroutine. A second Solve while one is in flight fails with
// ErrAlreadyRunning; runtime errors from the algorithm mark the run
// failed and propagate unswallowed.
func (d *Driver) Solve(ctx context.Context, p *problem.Problem) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return ErrAlreadyRunning
	}
	d.running = true
	d.status = false
	d.solution = nil
	d.runID = uuid.New().String()
	d.runProblem = p.Name()
	d.runStart = time.Now()
	d.runLogger = d.logger.WithRunID(d.runID).WithProblem(p.Name()).WithSolver(d.Name())
	d.mu.Unlock()

	if d.maxTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.maxTime)
		defer cancel()
	}
	d.runCtx = ctx

	d.notify(observer.Event{
		Type:      observer.EventSolveStart,
		Status:    observer.StatusRunning,
		Timestamp: d.runStart,
		RunID:     d.runID,
		Problem:   d.runProblem,
		Solver:    d.Name(),
	})
	d.runLogger.Info("solve started")

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.algorithm.Solve(ctx, p, d.report)
	}()
	err := <-errCh

	elapsed := time.Since(d.runStart)

	d.mu.Lock()
	d.running = false
	d.userTime = elapsed
	d.status = err == nil && d.solution != nil
	solved := d.status
	var makespan float64
	if d.solution != nil {
		makespan = d.solution.Makespan()
	}
	d.mu.Unlock()

	status := observer.StatusSolved
	if !solved {
		status = observer.StatusFailed
	}
	d.notify(observer.Event{
		Type:        observer.EventSolveEnd,
		Status:      status,
		Timestamp:   time.Now(),
		RunID:       d.runID,
		Problem:     d.runProblem,
		Solver:      d.Name(),
		Makespan:    makespan,
		ElapsedTime: elapsed,
		Error:       err,
	})

	if err != nil {
		d.runLogger.Error("solve failed", "error", err, "elapsed", elapsed)
		return err
	}
	if !solved {
		d.runLogger.Warn("solve finished without a solution", "elapsed", elapsed)
		return ErrNoSolution
	}
	d.runLogger.Info("solve finished", "makespan", makespan, "elapsed", elapsed)
	return nil
}

// report records an improved solution and fans it out to the callback and
// the observers. Runs on the worker goroutine.
func (d *Driver) report(sol *schedule.Solution) {
	d.mu.Lock()
	d.solution = sol
	d.mu.Unlock()

	makespan := sol.Makespan()
	d.runLogger.Info("better solution", "makespan", makespan)
	d.notify(observer.Event{
		Type:      observer.EventImprovement,
		Status:    observer.StatusRunning,
		Timestamp: time.Now(),
		RunID:     d.runID,
		Problem:   d.runProblem,
		Solver:    d.Name(),
		Makespan:  makespan,
	})

	if d.callback != nil {
		d.callback(sol)
	}
}

func (d *Driver) notify(event observer.Event) {
	if d.observers != nil {
		d.observers.Notify(d.runCtx, event)
	}
}
