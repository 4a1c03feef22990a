// Package solver executes scheduling algorithms against problems.
//
// # Architecture
//
// Two layers cooperate:
//
//   - Algorithm: the strategy. It explores schedules for one problem and
//     reports improved solutions as it goes.
//   - Driver: the run harness. It enforces one run at a time, applies the
//     time budget, stamps each run with a UUID, fans improvements out to
//     the registered callback and observers, and records status and user
//     time for the benchmark harness.
//
// Solve blocks until the worker finishes; callbacks and observer events
// run on the worker goroutine. Reported solutions are borrowed - clone
// inside the callback to keep one.
//
//	algo, _ := solver.NewPriorityDispatch("SPT")
//	drv := solver.New(algo,
//	    solver.WithMaxTime(30*time.Second),
//	    solver.WithCallback(func(sol *schedule.Solution) {
//	        best = sol.Clone()
//	    }))
//	if err := drv.Solve(ctx, p); err != nil { ... }
//	fmt.Println(drv.Solution().Makespan(), drv.UserTime())
//
// # Priority Dispatching
//
// PriorityDispatch is the built-in constructive heuristic: it keeps the
// frontier of imminent operations, scores it with a dispatching rule and
// commits the best step to its machine chain until every operation is
// scheduled. Any rules.Rule works, catalogue or user-defined.
//
// # External Back-Ends
//
// Adapters for mathematical back-ends (constraint programming, MILP,
// evolutionary search) implement Algorithm as well:
//
//  1. build a direct-mode solution: schedule.New(p, true)
//  2. model one variable triple per operation (start, end, interval of
//     the operation's duration), no-overlap per machine, precedence
//     within each job, objective min makespan
//  3. run the back-end under the ctx deadline it was handed
//  4. write results back with SetStartTime on every step and report
//
// In direct mode the core never derives start times; IsFeasible checks
// the chains by sorting on start time.
//
// # Failure Semantics
//
// Runtime errors (schedule.ErrInfeasible, back-end failures) propagate to
// the Driver, which marks the run failed, records the elapsed wall-clock
// and returns the error to the caller - they are never swallowed. The
// benchmark harness tabulates failed runs as unsolved.
package solver
