// Package observer implements the Observer pattern for solve run
// monitoring.
//
// # Overview
//
// Solvers emit three kinds of events over the lifetime of a run:
//
//	solve_start  - the run began
//	improvement  - a better solution was found
//	solve_end    - the run terminated (status solved or failed)
//
// Observers subscribe through a Manager; solvers notify the manager on
// their worker goroutine. Events carry metadata only (run ID, problem,
// solver, makespan, elapsed time) - never the solution itself. Consumers
// that need the schedule register an improvement callback on the solver
// and clone the solution inside it.
//
// # Usage
//
//	mgr := observer.NewManager()
//	mgr.Register(observer.NewConsoleObserver())
//	mgr.Register(myMetricsObserver)
//	...
//	mgr.Notify(ctx, observer.Event{Type: observer.EventSolveStart, ...})
//
// # Built-in Observers
//
//   - NoOpObserver: ignores everything; the safe default
//   - ConsoleObserver: prints events through a pluggable Logger
//
// # Error Isolation
//
// A panicking observer is recovered by the manager; other observers and
// the solve run itself are unaffected.
package observer
