// Package graph provides directed-graph operations for schedule evaluation.
// This includes topological sorting, cycle detection and longest-path
// computation over DAGs.
package graph

import "math"

// Directed is a directed graph over opaque int node handles, represented
// by an adjacency list. Nodes are registered implicitly by AddEdge and
// kept in insertion order, which makes the topological sort deterministic
// for a deterministic edge insertion order.
type Directed struct {
	nodes     []int
	index     map[int]int
	adjacency map[int][]int
	inDegree  map[int]int
}

// NewDirected creates an empty directed graph.
func NewDirected() *Directed {
	return &Directed{
		index:     make(map[int]int),
		adjacency: make(map[int][]int),
		inDegree:  make(map[int]int),
	}
}

// Len returns the number of registered nodes.
func (g *Directed) Len() int {
	return len(g.nodes)
}

// Contains reports whether the node has been registered.
func (g *Directed) Contains(node int) bool {
	_, ok := g.index[node]
	return ok
}

// AddEdge adds a directed edge from u to v, registering either node if it
// is new. The in-degree of a pure source node stays zero.
func (g *Directed) AddEdge(u, v int) {
	g.register(u)
	g.register(v)
	g.adjacency[u] = append(g.adjacency[u], v)
	g.inDegree[v]++
}

func (g *Directed) register(node int) {
	if _, ok := g.index[node]; ok {
		return
	}
	g.index[node] = len(g.nodes)
	g.nodes = append(g.nodes, node)
}

// TopologicalSort orders the nodes using Kahn's algorithm.
//
// The seed queue collects zero-in-degree nodes in insertion order and is
// consumed FIFO, so the output is deterministic for a deterministic edge
// insertion order. Returns ErrCycle if any node retains a non-zero
// residual in-degree, i.e. the graph is not a DAG.
//
// Optimizations:
//   - Pre-allocated slices with exact capacity to minimize allocations
//   - Fixed-size array queue with head/tail indices (each node is
//     enqueued at most once) to avoid expensive slice operations
//   - Single residual in-degree copy shared across the pass
func (g *Directed) TopologicalSort() ([]int, error) {
	numNodes := len(g.nodes)

	// Early return for empty graph
	if numNodes == 0 {
		return []int{}, nil
	}

	// Residual in-degrees, local to this pass
	inDegree := make(map[int]int, numNodes)
	for _, node := range g.nodes {
		inDegree[node] = g.inDegree[node]
	}

	// Fixed-size queue seeded with all zero-in-degree nodes in
	// insertion order
	queue := make([]int, numNodes)
	queueStart, queueEnd := 0, 0
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue[queueEnd] = node
			queueEnd++
		}
	}

	order := make([]int, 0, numNodes)
	for queueStart < queueEnd {
		current := queue[queueStart]
		queueStart++
		order = append(order, current)

		for _, neighbor := range g.adjacency[current] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue[queueEnd] = neighbor
				queueEnd++
			}
		}
	}

	// Nodes left with residual in-degree mean a cycle
	if len(order) != numNodes {
		return nil, ErrCycle
	}

	return order, nil
}

// DetectCycle reports whether the graph contains a cycle.
func (g *Directed) DetectCycle() bool {
	_, err := g.TopologicalSort()
	return err != nil
}

// LongestPath computes the longest path length from src to dst over a DAG.
//
// weight gives the weight of the edge entering a node, so every edge into
// the same node carries the same weight. Distances start at -Inf except
// dist[src] = 0 and are relaxed along the topological order.
//
// Returns +Inf when the graph has no topological order; callers use this
// as the infeasible sentinel. Returns ErrNodeNotFound if either endpoint
// was never registered.
func (g *Directed) LongestPath(src, dst int, weight func(node int) float64) (float64, error) {
	if !g.Contains(src) || !g.Contains(dst) {
		return 0, ErrNodeNotFound
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return math.Inf(1), nil
	}

	dist := make(map[int]float64, len(g.nodes))
	for _, node := range g.nodes {
		dist[node] = math.Inf(-1)
	}
	dist[src] = 0

	for _, node := range order {
		if math.IsInf(dist[node], -1) {
			continue
		}
		if node == dst {
			break
		}
		for _, neighbor := range g.adjacency[node] {
			if length := dist[node] + weight(neighbor); length > dist[neighbor] {
				dist[neighbor] = length
			}
		}
	}

	return dist[dst], nil
}
