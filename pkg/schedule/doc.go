// Package schedule is the core of the framework: it represents candidate
// schedules and re-evaluates them incrementally as solvers explore.
//
// # Data Structure
//
// A Solution owns a single arena of Steps: one real step per operation,
// one virtual head step per job and per machine. Every step carries four
// links (previous/next in its job chain, previous/next in its machine
// chain) expressed as arena indices, with None marking absent neighbours.
//
// Job chains are fixed when the Solution is built and mirror the
// operation order of the problem. Machine chains start empty and grow as
// a solver dispatches steps; together with the job chains they form the
// disjunctive graph of the schedule.
//
// # Evaluation
//
// After a machine chain changes, UpdateStartTime rebuilds a topological
// order over the disjunctive graph and propagates start times along it:
//
//	start(s) = max(end(prevJob(s)), end(prevMachine(s)))
//
// Processing in topological order guarantees both predecessors are final
// before a step is updated. A failed sort means the last mutation closed
// a cycle; the error surfaces as ErrInfeasible and the caller treats the
// mutation as invalid.
//
// # Construction Loop
//
// Priority-dispatch heuristics drive the usual cycle:
//
//	sol := schedule.New(p, false)
//	for frontier := sol.ImminentOps(); len(frontier) > 0; frontier = sol.ImminentOps() {
//	    best := pickByRule(frontier)
//	    if err := sol.Dispatch(best, true); err != nil {
//	        // the dispatch closed a cycle; abandon or undo
//	    }
//	}
//
// # Direct Mode
//
// External back-ends (CP, MILP, evolutionary search) build a Solution in
// direct mode, solve their own model and write the results back with
// SetStartTime. The core never propagates in direct mode; IsFeasible
// validates the chains by sorting on start time.
//
// # Ownership
//
// Every Step is owned by exactly one Solution. Solutions are not safe for
// concurrent use; the Problem they reference is immutable and may be
// shared freely.
package schedule
