// Package runner benchmarks solvers against problem sets.
//
// # Overview
//
// A Runner builds the full problem x algorithm case matrix, numbers the
// cases, and drains them through a fixed pool of worker goroutines. Each
// case owns its driver, so no solver state crosses goroutines; the
// immutable problems are shared by reference.
//
// Failed runs are first-class results: they are stored with their error
// and elapsed time and appear in the summary marked unsolved.
//
// # Usage
//
//	problems := []*problem.Problem{ft06, la01}
//	algos := []solver.Algorithm{spt, hh}
//	r, _ := runner.New(problems, algos, runner.WithWorkers(4))
//	results := r.Run(ctx)
//	fmt.Print(runner.Summary(results))
//
// # Result Storage
//
// Every result lands in a Store (in-memory by default) under a UUID, so
// hosts can keep history or expose it elsewhere.
package runner
