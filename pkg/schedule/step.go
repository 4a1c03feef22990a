// Package schedule maintains candidate schedules as a disjunctive graph
// with mutable machine orderings and incremental start-time propagation.
package schedule

import (
	"github.com/yesoreyeram/thittam/pkg/types"
)

// StepID is the handle of a step inside a Solution's arena.
type StepID int

// None is the null step handle.
const None StepID = -1

// Step is one node of the disjunctive graph. It wraps a source operation
// (real or chain head) and holds its four neighbour links plus the start
// time. Steps live in a single arena owned by their Solution; the links
// are arena indices, never pointers.
type Step struct {
	// Source is the wrapped operation. Heads carry a zero duration.
	Source types.Operation

	// Job-chain links, fixed after construction.
	PrevJob StepID
	NextJob StepID

	// Machine-chain links, mutated as the solver dispatches.
	PrevMachine StepID
	NextMachine StepID

	// StartTime is the scheduled start. In disjunctive-graph mode it is
	// derived from the chains; in direct mode it is assigned by a back-end.
	StartTime float64
}

// EndTime returns StartTime plus the source duration.
func (s *Step) EndTime() float64 {
	return s.StartTime + s.Source.Duration
}

// Dispatched reports whether the step has been linked into a machine
// chain. Machine heads count as dispatched.
func (s *Step) Dispatched() bool {
	return s.PrevMachine != None || s.Source.Kind == types.KindMachine
}

// Step returns the arena entry for id. The pointer stays valid for the
// lifetime of the Solution.
func (s *Solution) Step(id StepID) *Step {
	return &s.steps[id]
}

// ConnectJob links a -> b in the job chain: a.NextJob = b, b.PrevJob = a.
// b is spliced out of its current position first, and a's old successor
// loses its back-link. Both steps must belong to the same job; on
// mismatch ErrChainMismatch is returned and no link changes.
func (s *Solution) ConnectJob(a, b StepID) error {
	if a == b {
		return nil
	}
	sa, sb := &s.steps[a], &s.steps[b]
	if !sa.Source.SameJob(sb.Source) {
		return chainMismatch("job", sa.Source, sb.Source)
	}
	if sa.NextJob == b {
		return nil
	}

	// splice b out of wherever it is linked now
	if prev := sb.PrevJob; prev != None {
		s.steps[prev].NextJob = sb.NextJob
	}
	if next := sb.NextJob; next != None {
		s.steps[next].PrevJob = sb.PrevJob
	}
	sb.NextJob = None

	if next := sa.NextJob; next != None {
		s.steps[next].PrevJob = None
	}
	sa.NextJob = b
	sb.PrevJob = a
	return nil
}

// ConnectMachine links a -> b in the machine chain with the same splicing
// semantics as ConnectJob, guarded by machine equality. Linking a step
// that is already in a machine chain moves it.
func (s *Solution) ConnectMachine(a, b StepID) error {
	if a == b {
		return nil
	}
	sa, sb := &s.steps[a], &s.steps[b]
	if !sa.Source.SameMachine(sb.Source) {
		return chainMismatch("machine", sa.Source, sb.Source)
	}
	if sa.NextMachine == b {
		return nil
	}

	// splice b out of wherever it is linked now
	if prev := sb.PrevMachine; prev != None {
		s.steps[prev].NextMachine = sb.NextMachine
	}
	if next := sb.NextMachine; next != None {
		s.steps[next].PrevMachine = sb.PrevMachine
	}
	sb.NextMachine = None

	if next := sa.NextMachine; next != None {
		s.steps[next].PrevMachine = None
	}
	sa.NextMachine = b
	sb.PrevMachine = a
	return nil
}

// HeadJob walks PrevJob links until the chain head.
func (s *Solution) HeadJob(id StepID) StepID {
	for s.steps[id].PrevJob != None {
		id = s.steps[id].PrevJob
	}
	return id
}

// TailJob walks NextJob links until the last step.
func (s *Solution) TailJob(id StepID) StepID {
	for s.steps[id].NextJob != None {
		id = s.steps[id].NextJob
	}
	return id
}

// HeadMachine walks PrevMachine links until the chain head.
func (s *Solution) HeadMachine(id StepID) StepID {
	for s.steps[id].PrevMachine != None {
		id = s.steps[id].PrevMachine
	}
	return id
}

// TailMachine walks NextMachine links until the last step.
func (s *Solution) TailMachine(id StepID) StepID {
	for s.steps[id].NextMachine != None {
		id = s.steps[id].NextMachine
	}
	return id
}

// updateStepTime derives the start time of one step from its chain
// predecessors. Undispatched steps keep their current start time.
func (s *Solution) updateStepTime(id StepID) {
	step := &s.steps[id]
	if step.PrevMachine == None {
		return
	}
	prevJobEnd := s.steps[step.PrevJob].EndTime()
	prevMachineEnd := s.steps[step.PrevMachine].EndTime()
	step.StartTime = max(prevJobEnd, prevMachineEnd)
}
