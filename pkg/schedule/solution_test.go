package schedule

import (
	"errors"
	"testing"

	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/types"
)

// TestTrivialInstance covers the 1x1 golden scenario: one operation of
// duration 5 yields makespan 5 once dispatched and evaluated.
func TestTrivialInstance(t *testing.T) {
	p, err := problem.New("1x1", []types.Operation{types.NewOperation(0, 0, 5)})
	if err != nil {
		t.Fatal(err)
	}
	s := New(p, false)

	if err := s.Dispatch(0, true); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if got := s.Makespan(); got != 5 {
		t.Errorf("Makespan() = %g, want 5", got)
	}
	if !s.IsFeasible() {
		t.Error("IsFeasible() = false on a trivial schedule")
	}
}

// TestTwoByTwoGolden covers the 2x2 golden scenario with the fixed
// dispatch order J0.op0, J1.op0, J0.op1, J1.op1.
func TestTwoByTwoGolden(t *testing.T) {
	s := New(twoByTwo(t), false)

	for _, id := range []StepID{0, 2, 1, 3} {
		if err := s.Dispatch(id, true); err != nil {
			t.Fatalf("Dispatch(%d) error = %v", id, err)
		}
	}

	if got := s.Makespan(); got != 6 {
		t.Errorf("Makespan() = %g, want 6", got)
	}
	if !s.IsFeasible() {
		t.Error("IsFeasible() = false")
	}

	// spot-check the derived starts
	wantStarts := map[StepID]float64{0: 0, 2: 0, 1: 4, 3: 4}
	for id, want := range wantStarts {
		if got := s.Step(id).StartTime; got != want {
			t.Errorf("step %d start = %g, want %g", id, got, want)
		}
	}
}

// TestEmptyProblem covers boundary B1.
func TestEmptyProblem(t *testing.T) {
	p, err := problem.New("empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	s := New(p, false)

	if err := s.UpdateStartTime(); err != nil {
		t.Fatalf("UpdateStartTime() error = %v", err)
	}
	if got := s.Makespan(); got != 0 {
		t.Errorf("Makespan() = %g, want 0", got)
	}
	if !s.IsFeasible() {
		t.Error("IsFeasible() = false on empty problem")
	}
	if got := s.ImminentOps(); len(got) != 0 {
		t.Errorf("ImminentOps() = %v, want empty", got)
	}
}

// TestCycleDetection covers the cycle golden scenario: a machine edge
// reversing a job edge forms a 2-cycle, the sort fails and propagation
// reports the schedule infeasible.
func TestCycleDetection(t *testing.T) {
	p, err := problem.New("cycle", []types.Operation{
		types.NewOperation(0, 0, 3),
		types.NewOperation(0, 0, 2),
	})
	if err != nil {
		t.Fatal(err)
	}
	s := New(p, false)

	// dispatch the job successor first, then its predecessor: the machine
	// chain now runs 1 -> 0 against the job chain 0 -> 1
	if err := s.Dispatch(1, false); err != nil {
		t.Fatal(err)
	}
	if err := s.Dispatch(0, false); err != nil {
		t.Fatal(err)
	}

	if _, err := s.TopologicalSort(); !errors.Is(err, ErrInfeasible) {
		t.Errorf("TopologicalSort() error = %v, want ErrInfeasible", err)
	}
	if err := s.UpdateStartTime(); !errors.Is(err, ErrInfeasible) {
		t.Errorf("UpdateStartTime() error = %v, want ErrInfeasible", err)
	}
	if s.IsFeasible() {
		t.Error("IsFeasible() = true on a cyclic schedule")
	}
}

// TestImminentOps covers invariant I6: at most one step per job, none for
// fully dispatched jobs.
func TestImminentOps(t *testing.T) {
	s := New(twoByTwo(t), false)

	frontier := s.ImminentOps()
	if len(frontier) != 2 {
		t.Fatalf("initial frontier = %v, want one step per job", frontier)
	}
	perJob := make(map[int]int)
	for _, id := range frontier {
		perJob[s.Step(id).Source.Job]++
	}
	for job, n := range perJob {
		if n != 1 {
			t.Errorf("job %d appears %d times in frontier", job, n)
		}
	}

	// dispatch all of job 0; it must leave the frontier
	for _, id := range []StepID{0, 1} {
		if err := s.Dispatch(id, true); err != nil {
			t.Fatal(err)
		}
	}
	frontier = s.ImminentOps()
	if len(frontier) != 1 || s.Step(frontier[0]).Source.Job != 1 {
		t.Errorf("frontier after finishing job 0 = %v, want only job 1", frontier)
	}
}

// TestDispatchCount covers invariant I5.
func TestDispatchCount(t *testing.T) {
	s := New(twoByTwo(t), false)

	for n, id := range []StepID{0, 2, 1, 3} {
		if err := s.Dispatch(id, true); err != nil {
			t.Fatal(err)
		}
		dispatched := 0
		for _, rid := range s.RealSteps() {
			if s.Step(rid).PrevMachine != None {
				dispatched++
			}
		}
		if dispatched != n+1 {
			t.Fatalf("after %d dispatches %d steps are linked", n+1, dispatched)
		}
	}
}

// TestPropagationInvariants covers I1 and I2 after a full evaluation.
func TestPropagationInvariants(t *testing.T) {
	p, err := problem.Random(5, 4, 7, 1, 9)
	if err != nil {
		t.Fatal(err)
	}
	s := New(p, false)

	// dispatch greedily along the frontier
	for frontier := s.ImminentOps(); len(frontier) > 0; frontier = s.ImminentOps() {
		if err := s.Dispatch(frontier[0], true); err != nil {
			t.Fatal(err)
		}
	}

	for _, id := range s.RealSteps() {
		step := s.Step(id)

		// I1: end time identity
		if got := step.EndTime(); got != step.StartTime+step.Source.Duration {
			t.Errorf("step %d end = %g, want %g", id, got, step.StartTime+step.Source.Duration)
		}

		// I2: both predecessors finished first
		if prev := step.PrevJob; s.Step(prev).Source.Kind == types.KindOperation {
			if step.StartTime < s.Step(prev).EndTime() {
				t.Errorf("step %d starts before its job predecessor ends", id)
			}
		}
		if prev := step.PrevMachine; prev != None && s.Step(prev).Source.Kind == types.KindOperation {
			if step.StartTime < s.Step(prev).EndTime() {
				t.Errorf("step %d starts before its machine predecessor ends", id)
			}
		}
	}

	if !s.IsFeasible() {
		t.Error("IsFeasible() = false after greedy construction")
	}
}

// TestEvaluationIdempotent covers law L1: evaluating twice yields
// bit-identical start times.
func TestEvaluationIdempotent(t *testing.T) {
	s := New(twoByTwo(t), false)
	for _, id := range []StepID{0, 2, 1, 3} {
		if err := s.Dispatch(id, true); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.UpdateStartTime(); err != nil {
		t.Fatal(err)
	}
	first := make([]float64, s.Len())
	for i, id := range s.RealSteps() {
		first[i] = s.Step(id).StartTime
	}

	if err := s.UpdateStartTime(); err != nil {
		t.Fatal(err)
	}
	for i, id := range s.RealSteps() {
		if got := s.Step(id).StartTime; got != first[i] {
			t.Errorf("step %d start changed on re-evaluation: %g != %g", id, got, first[i])
		}
	}
}

// TestCloneFidelityAndIndependence covers law L2 and the clone golden
// scenario: equal makespans, and later mutation of the original leaves
// the clone untouched.
func TestCloneFidelityAndIndependence(t *testing.T) {
	s := New(twoByTwo(t), false)
	for _, id := range []StepID{0, 2, 1, 3} {
		if err := s.Dispatch(id, true); err != nil {
			t.Fatal(err)
		}
	}

	clone := s.Clone()
	if err := s.UpdateStartTime(); err != nil {
		t.Fatal(err)
	}
	if err := clone.UpdateStartTime(); err != nil {
		t.Fatal(err)
	}
	if s.Makespan() != clone.Makespan() {
		t.Fatalf("clone makespan %g != original %g", clone.Makespan(), s.Makespan())
	}

	// mutate the original's machine chain: move J0.op0 to the tail of M0
	before := clone.Makespan()
	if err := s.Dispatch(0, true); err != nil {
		t.Fatal(err)
	}
	if err := clone.UpdateStartTime(); err != nil {
		t.Fatal(err)
	}
	if got := clone.Makespan(); got != before {
		t.Errorf("clone makespan changed after mutating the original: %g != %g", got, before)
	}
}

// TestDirectMode exercises the adapter surface: explicit start times,
// no propagation, feasibility by start-time ordering.
func TestDirectMode(t *testing.T) {
	s := New(twoByTwo(t), true)
	if !s.DirectMode() {
		t.Fatal("DirectMode() = false")
	}

	// a valid assignment
	for id, start := range map[StepID]float64{0: 0, 1: 4, 2: 0, 3: 4} {
		s.SetStartTime(id, start)
	}
	if !s.IsFeasible() {
		t.Error("IsFeasible() = false on a valid direct assignment")
	}
	if got := s.Makespan(); got != 6 {
		t.Errorf("Makespan() = %g, want 6", got)
	}

	// overlap two operations on machine 0
	s.SetStartTime(3, 1)
	if s.IsFeasible() {
		t.Error("IsFeasible() = true with overlapping machine assignments")
	}
}

func TestEstimatedStart(t *testing.T) {
	s := New(twoByTwo(t), false)

	// nothing dispatched: every first operation could start at 0
	if got := s.EstimatedStart(0); got != 0 {
		t.Errorf("EstimatedStart(0) = %g, want 0", got)
	}

	if err := s.Dispatch(2, true); err != nil { // J1.op0 on M1, ends at 4
		t.Fatal(err)
	}
	if err := s.Dispatch(0, true); err != nil { // J0.op0 on M0, ends at 3
		t.Fatal(err)
	}

	// J0.op1 on M1: job predecessor ends at 3, machine tail ends at 4
	if got := s.EstimatedStart(1); got != 4 {
		t.Errorf("EstimatedStart(1) = %g, want 4", got)
	}
	// J1.op1 on M0: job predecessor ends at 4, machine tail ends at 3
	if got := s.EstimatedStart(3); got != 4 {
		t.Errorf("EstimatedStart(3) = %g, want 4", got)
	}
}
