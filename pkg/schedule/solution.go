package schedule

import (
	"fmt"
	"sort"

	"github.com/yesoreyeram/thittam/pkg/graph"
	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/types"
)

// Solution owns one candidate schedule for a problem: a step arena holding
// one real step per operation plus one head step per job and per machine.
//
// Job chains are fixed at construction; machine chains are the decision
// variable and change as a solver dispatches steps. In disjunctive-graph
// mode (the default) start times are derived from the chains by
// UpdateStartTime; in direct mode a back-end assigns them explicitly with
// SetStartTime.
//
// A Solution must not be shared across goroutines; the Problem it points
// to may be.
type Solution struct {
	problem    *problem.Problem
	directMode bool

	// arena: real steps in problem order, then job heads, then machine heads
	steps []Step

	jobHead     map[int]StepID
	machineHead map[int]StepID

	// per-job statics used by dispatching rules
	jobOpCount map[int]int
	jobWork    map[int]float64
}

// New creates a solution with every job chain linked head-first in problem
// order and every real step undispatched at start time zero.
//
// directMode selects how start times are produced: false means the
// disjunctive-graph chains drive them, true means a mathematical back-end
// assigns them explicitly.
func New(p *problem.Problem, directMode bool) *Solution {
	ops := p.Ops()
	jobs := p.Jobs()
	machines := p.Machines()

	s := &Solution{
		problem:     p,
		directMode:  directMode,
		steps:       make([]Step, 0, len(ops)+len(jobs)+len(machines)),
		jobHead:     make(map[int]StepID, len(jobs)),
		machineHead: make(map[int]StepID, len(machines)),
		jobOpCount:  make(map[int]int, len(jobs)),
		jobWork:     make(map[int]float64, len(jobs)),
	}

	for _, op := range ops {
		s.steps = append(s.steps, Step{
			Source:      op,
			PrevJob:     None,
			NextJob:     None,
			PrevMachine: None,
			NextMachine: None,
		})
		s.jobOpCount[op.Job]++
		s.jobWork[op.Job] += op.Duration
	}
	for _, job := range jobs {
		s.jobHead[job] = StepID(len(s.steps))
		s.steps = append(s.steps, Step{
			Source:      types.JobHead(job),
			PrevJob:     None,
			NextJob:     None,
			PrevMachine: None,
			NextMachine: None,
		})
	}
	for _, machine := range machines {
		s.machineHead[machine] = StepID(len(s.steps))
		s.steps = append(s.steps, Step{
			Source:      types.MachineHead(machine),
			PrevJob:     None,
			NextJob:     None,
			PrevMachine: None,
			NextMachine: None,
		})
	}

	// link each job chain: head, then the job's operations in problem order
	prev := make(map[int]StepID, len(jobs))
	for _, job := range jobs {
		prev[job] = s.jobHead[job]
	}
	for i, op := range ops {
		// same-job links can never mismatch here
		_ = s.ConnectJob(prev[op.Job], StepID(i))
		prev[op.Job] = StepID(i)
	}

	return s
}

// Problem returns the problem this solution schedules.
func (s *Solution) Problem() *problem.Problem {
	return s.problem
}

// DirectMode reports whether start times are assigned by a back-end
// rather than derived from the machine chains.
func (s *Solution) DirectMode() bool {
	return s.directMode
}

// Len returns the number of real steps.
func (s *Solution) Len() int {
	return len(s.problem.Ops())
}

// RealSteps returns the handles of all real steps in problem order.
func (s *Solution) RealSteps() []StepID {
	ids := make([]StepID, s.Len())
	for i := range ids {
		ids[i] = StepID(i)
	}
	return ids
}

// JobHead returns the head step of a job chain.
func (s *Solution) JobHead(job int) StepID {
	return s.jobHead[job]
}

// MachineHead returns the head step of a machine chain.
func (s *Solution) MachineHead(machine int) StepID {
	return s.machineHead[machine]
}

// JobOpCount returns the number of operations in a job.
func (s *Solution) JobOpCount(job int) int {
	return s.jobOpCount[job]
}

// JobWork returns the total processing time of a job.
func (s *Solution) JobWork(job int) float64 {
	return s.jobWork[job]
}

// RemainingWork sums the durations of a step and its job successors.
func (s *Solution) RemainingWork(id StepID) float64 {
	var work float64
	for ref := id; ref != None; ref = s.steps[ref].NextJob {
		work += s.steps[ref].Source.Duration
	}
	return work
}

// SetStartTime assigns a start time explicitly. This is the direct-mode
// write path used by external back-end adapters.
func (s *Solution) SetStartTime(id StepID, t float64) {
	s.steps[id].StartTime = t
}

// ImminentOps returns the dispatch frontier: for each job, the first step
// of its chain that is not yet dispatched. Fully dispatched jobs
// contribute nothing.
func (s *Solution) ImminentOps() []StepID {
	frontier := make([]StepID, 0, len(s.jobHead))
	for _, job := range s.problem.Jobs() {
		id := s.steps[s.jobHead[job]].NextJob
		for id != None && s.steps[id].PrevMachine != None {
			id = s.steps[id].NextJob
		}
		if id != None {
			frontier = append(frontier, id)
		}
	}
	return frontier
}

// Dispatch appends a step to the tail of its machine's chain, committing
// its order against the other operations on that machine. A step already
// in a machine chain is unlinked and moved.
//
// When updateTime is set the start times are re-propagated from the
// dispatched step onward; an ErrInfeasible result means the dispatch
// created a cycle and the schedule is in a transient invalid state.
func (s *Solution) Dispatch(id StepID, updateTime bool) error {
	step := &s.steps[id]
	if step.Source.Kind != types.KindOperation {
		return fmt.Errorf("%w: cannot dispatch %s", ErrChainMismatch, step.Source)
	}

	head, ok := s.machineHead[step.Source.Machine]
	if !ok {
		return fmt.Errorf("%w: no machine %d", ErrChainMismatch, step.Source.Machine)
	}
	if err := s.ConnectMachine(s.TailMachine(head), id); err != nil {
		return err
	}

	if updateTime {
		return s.UpdateStartTimeFrom(id)
	}
	return nil
}

// TopologicalSort orders the real steps over the current disjunctive
// graph: job edges plus machine edges, bracketed by synthetic source and
// sink nodes that are stripped from the result. ErrInfeasible means the
// machine chains close a cycle against the job chains.
func (s *Solution) TopologicalSort() ([]StepID, error) {
	n := s.Len()
	src, sink := n, n+1

	g := graph.NewDirected()
	for i := 0; i < n; i++ {
		step := &s.steps[i]

		// job chain edges
		if s.steps[step.PrevJob].Source.Kind == types.KindJob {
			g.AddEdge(src, i)
		}
		if step.NextJob == None {
			g.AddEdge(i, sink)
		} else {
			g.AddEdge(i, int(step.NextJob))
		}

		// machine chain edge, skipping a duplicate of the job edge
		if step.NextMachine != None && step.NextMachine != step.NextJob {
			g.AddEdge(i, int(step.NextMachine))
		}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
	}

	sorted := make([]StepID, 0, n)
	for _, node := range order {
		if node == src || node == sink {
			continue
		}
		sorted = append(sorted, StepID(node))
	}
	return sorted, nil
}

// UpdateStartTime re-derives every start time by propagating along the
// topological order of the disjunctive graph. ErrInfeasible means the
// schedule currently has a cycle and no start times were changed.
func (s *Solution) UpdateStartTime() error {
	return s.propagate(None)
}

// UpdateStartTimeFrom propagates start times from the given step's
// position in the topological order onward; steps before that position
// are not recomputed. After a step is appended at a machine tail none of
// them depends on it. After an already-dispatched step is moved, its
// former machine successor lies before that position and keeps its
// previous start time until the next UpdateStartTime.
func (s *Solution) UpdateStartTimeFrom(from StepID) error {
	return s.propagate(from)
}

func (s *Solution) propagate(from StepID) error {
	sorted, err := s.TopologicalSort()
	if err != nil {
		return err
	}

	pos := 0
	if from != None {
		for i, id := range sorted {
			if id == from {
				pos = i
				break
			}
		}
	}

	// in topological order both predecessors of a step are final when
	// the step itself is updated
	for _, id := range sorted[pos:] {
		s.updateStepTime(id)
	}
	return nil
}

// Makespan returns the maximum end time over all real steps, zero for an
// empty problem. Meaningful after a successful UpdateStartTime (or, in
// direct mode, after the back-end assigned all start times).
func (s *Solution) Makespan() float64 {
	var makespan float64
	for i := 0; i < s.Len(); i++ {
		if end := s.steps[i].EndTime(); end > makespan {
			makespan = end
		}
	}
	return makespan
}

// IsFeasible validates the schedule: within every job chain and on every
// machine, successive operations must not overlap. In disjunctive-graph
// mode the start times are refreshed first; a cyclic schedule is
// infeasible by definition.
func (s *Solution) IsFeasible() bool {
	if !s.directMode {
		if err := s.UpdateStartTime(); err != nil {
			return false
		}
	}

	// job chains: walk from each head
	for _, head := range s.jobHead {
		ref := 0.0
		for id := s.steps[head].NextJob; id != None; id = s.steps[id].NextJob {
			step := &s.steps[id]
			if step.StartTime < ref {
				return false
			}
			ref = step.EndTime()
		}
	}

	// machine chains: group by machine and order by start time
	byMachine := make(map[int][]StepID)
	for i := 0; i < s.Len(); i++ {
		machine := s.steps[i].Source.Machine
		byMachine[machine] = append(byMachine[machine], StepID(i))
	}
	for _, ids := range byMachine {
		sort.SliceStable(ids, func(a, b int) bool {
			return s.steps[ids[a]].StartTime < s.steps[ids[b]].StartTime
		})
		ref := 0.0
		for _, id := range ids {
			step := &s.steps[id]
			if step.StartTime < ref {
				return false
			}
			ref = step.EndTime()
		}
	}
	return true
}

// EstimatedStart returns what a step's start time would become if it were
// dispatched next on its machine: the later of its job predecessor's end
// and the machine tail's end.
func (s *Solution) EstimatedStart(id StepID) float64 {
	step := &s.steps[id]
	prevJobEnd := s.steps[step.PrevJob].EndTime()
	tail := s.TailMachine(s.machineHead[step.Source.Machine])
	return max(prevJobEnd, s.steps[tail].EndTime())
}

// MachineUtilization returns service time over total elapsed time for a
// machine chain, or 1.0 for an empty chain. The denominator is the chain
// tail's end time, so idle time before the first operation counts.
func (s *Solution) MachineUtilization(machine int) float64 {
	var service, total float64
	for id := s.steps[s.machineHead[machine]].NextMachine; id != None; id = s.steps[id].NextMachine {
		service += s.steps[id].Source.Duration
		total = s.steps[id].EndTime()
	}
	if total == 0 {
		return 1.0
	}
	return service / total
}

// Clone produces an independent solution over the same immutable problem.
// The arena is duplicated wholesale; since links are arena indices they
// remain valid in the copy, reproducing both chains and all start times.
// In disjunctive-graph mode the copy is re-propagated before returning.
func (s *Solution) Clone() *Solution {
	clone := &Solution{
		problem:     s.problem,
		directMode:  s.directMode,
		steps:       append([]Step(nil), s.steps...),
		jobHead:     make(map[int]StepID, len(s.jobHead)),
		machineHead: make(map[int]StepID, len(s.machineHead)),
		jobOpCount:  s.jobOpCount,
		jobWork:     s.jobWork,
	}
	for job, id := range s.jobHead {
		clone.jobHead[job] = id
	}
	for machine, id := range s.machineHead {
		clone.machineHead[machine] = id
	}

	if !clone.directMode {
		// an acyclic original stays acyclic under a wholesale arena copy
		_ = clone.UpdateStartTime()
	}
	return clone
}
