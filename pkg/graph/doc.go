// Package graph provides the directed-graph algorithms behind schedule
// evaluation.
//
// # Overview
//
// A candidate schedule is a disjunctive graph: the union of fixed job-chain
// edges and mutable machine-chain edges over the operation steps. After
// every machine-chain change the schedule layer rebuilds a Directed graph
// and asks for a topological order; success doubles as the acyclicity
// check, and the order drives start-time propagation.
//
// # Key Algorithms
//
// Topological Sort:
//   - Kahn's algorithm with a FIFO seed queue in node insertion order
//   - Deterministic output for deterministic edge insertion
//   - Cycle detection falls out of the residual in-degree check
//
// Longest Path:
//   - Single relaxation sweep along the topological order
//   - Edge weights given per target node (all edges into a node share one
//     weight, the node's own processing time in scheduling use)
//   - +Inf result doubles as the "no valid order" sentinel
//
// # Performance Characteristics
//
//   - TopologicalSort: O(V + E)
//   - LongestPath: O(V + E) including the embedded sort
//
// # Thread Safety
//
// A Directed graph is not safe for concurrent mutation. The schedule layer
// builds a fresh throwaway graph per evaluation, so no sharing occurs.
package graph
