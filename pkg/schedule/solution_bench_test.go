package schedule

import (
	"testing"

	"github.com/yesoreyeram/thittam/pkg/problem"
)

// BenchmarkGreedyConstruction measures a full frontier-driven construction
// pass including re-evaluation after every dispatch.
func BenchmarkGreedyConstruction(b *testing.B) {
	p, err := problem.Random(15, 10, 1, 10, 50)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := New(p, false)
		for frontier := s.ImminentOps(); len(frontier) > 0; frontier = s.ImminentOps() {
			if err := s.Dispatch(frontier[0], true); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkUpdateStartTime measures one full propagation over a built
// schedule.
func BenchmarkUpdateStartTime(b *testing.B) {
	p, err := problem.Random(15, 10, 1, 10, 50)
	if err != nil {
		b.Fatal(err)
	}
	s := New(p, false)
	for frontier := s.ImminentOps(); len(frontier) > 0; frontier = s.ImminentOps() {
		if err := s.Dispatch(frontier[0], true); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.UpdateStartTime(); err != nil {
			b.Fatal(err)
		}
	}
}
