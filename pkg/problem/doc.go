// Package problem models job-shop problem instances.
//
// # Overview
//
// A Problem bundles the ordered operation list with the derived job and
// machine sets and an optional best-known makespan. It never changes after
// construction, which makes it safe to share by reference across solver
// goroutines.
//
// # Construction
//
// Three construction modes are supported:
//
//	problem.New(name, ops)                          // explicit list
//	problem.Random(jobs, machines, seed, min, max)  // reproducible random
//	problem.FromFile(path)                          // benchmark text format
//
// Named benchmark instances with optimum bounds live in the sibling
// benchmark package, which layers an index over FromFile.
//
// # Text Format
//
// Instance files are line based. '#' starts a comment line. The first
// data line holds the job and machine counts; each following line lists
// one job's machine/duration pairs in execution order:
//
//	# instance ft06
//	6 6
//	2 1 0 3 1 6 3 7 5 3 4 6
//	...
//
// Write serialises a problem back into this format; for a problem read
// by Parse, re-parsing yields an identical operation list.
package problem
