// Package benchmark resolves named job-shop instances to problems.
//
// # Index Format
//
// A registry is driven by a JSON index, an array of entries:
//
//	[
//	  {"name": "ft06", "path": "instances/ft06.txt", "optimum": 55},
//	  {"name": "swv06", "path": "instances/swv06.txt",
//	   "bounds": {"lower": 1591, "upper": 1667}}
//	]
//
// Paths are relative to the registry's filesystem. The index is validated
// against a JSON Schema before any lookup; lookup is by exact name and a
// missing name surfaces ErrBenchmarkNotFound.
//
// # Shipped Instances
//
// The module embeds a small set of classic instances (ft06, la01) with
// their known optima. Larger collections plug in through
// NewRegistryFromDir pointing at a directory with the same layout.
package benchmark
