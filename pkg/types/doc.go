// Package types provides the shared domain values of the scheduling
// framework.
//
// # Overview
//
// A job-shop problem is described by a flat list of operations. Each
// Operation names its job, its machine and its processing time; the order
// of operations within a job is implied by their order in the problem.
//
// Chains over these operations (one per job, one per machine) are headed
// by virtual operations so that linked-list handling stays uniform. The
// Kind tag distinguishes the three cases:
//
//	KindOperation - a real operation
//	KindJob       - the head of a job chain
//	KindMachine   - the head of a machine chain
//
// # Optimum Bounds
//
// Benchmark instances carry the best known makespan, either exact or as a
// [lower, upper] interval. Optimum models both and exposes Ref(), the
// reference value used for relative-error reporting.
//
// # Thread Safety
//
// All values in this package are immutable after construction and safe to
// share across goroutines.
package types
