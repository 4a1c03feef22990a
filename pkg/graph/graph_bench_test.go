package graph

import "testing"

// BenchmarkTopologicalSort measures sorting a layered DAG shaped like a
// mid-size schedule (jobs x machines grid).
func BenchmarkTopologicalSort(b *testing.B) {
	const jobs, machines = 20, 15

	build := func() *Directed {
		g := NewDirected()
		for j := 0; j < jobs; j++ {
			for m := 1; m < machines; m++ {
				g.AddEdge(j*machines+m-1, j*machines+m)
			}
		}
		// cross edges simulating machine chains
		for m := 0; m < machines; m++ {
			for j := 1; j < jobs; j++ {
				g.AddEdge((j-1)*machines+m, j*machines+m)
			}
		}
		return g
	}

	g := build()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.TopologicalSort(); err != nil {
			b.Fatal(err)
		}
	}
}
