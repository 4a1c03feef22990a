package graph

import "errors"

// Sentinel errors for graph operations
var (
	// ErrCycle indicates the graph has no topological order.
	ErrCycle = errors.New("graph: cycle detected")

	// ErrNodeNotFound indicates an operation referenced an unregistered node.
	ErrNodeNotFound = errors.New("graph: node not found")
)
