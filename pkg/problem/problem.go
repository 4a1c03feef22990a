// Package problem models immutable job-shop problem instances: an ordered
// operation list plus the derived job and machine sets.
package problem

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/yesoreyeram/thittam/pkg/types"
)

// Problem is an immutable job-shop instance. The operation order is the
// dispatching order within each job. Problems are safe to share by
// reference across goroutines.
type Problem struct {
	name     string
	ops      []types.Operation
	jobs     []int
	machines []int
	optimum  types.Optimum
}

// New creates a problem from an explicit operation list. The list order
// fixes the within-job sequencing. Operations with negative durations are
// rejected.
func New(name string, ops []types.Operation) (*Problem, error) {
	for _, op := range ops {
		if op.Kind != types.KindOperation {
			return nil, types.ErrUnknownKind(op.Kind)
		}
		if op.Duration < 0 {
			return nil, types.ErrNegativeDuration(op.Job, op.Machine, op.Duration)
		}
	}

	p := &Problem{
		name: name,
		ops:  append([]types.Operation(nil), ops...),
	}
	p.jobs, p.machines = collectJobsAndMachines(p.ops)
	return p, nil
}

// Random generates a problem with nJobs jobs visiting each of nMachines
// machines exactly once in shuffled order, with integer durations drawn
// uniformly from [durMin, durMax]. The same seed reproduces the same
// instance.
func Random(nJobs, nMachines int, seed int64, durMin, durMax int) (*Problem, error) {
	if nJobs <= 0 || nMachines <= 0 {
		return nil, ErrEmptyProblem
	}
	if durMin < 0 {
		return nil, types.ErrNegativeDuration(-1, -1, float64(durMin))
	}
	if durMax < durMin {
		return nil, fmt.Errorf("problem: invalid duration range [%d, %d]", durMin, durMax)
	}

	rng := rand.New(rand.NewSource(seed))
	machines := make([]int, nMachines)
	for m := range machines {
		machines[m] = m
	}

	ops := make([]types.Operation, 0, nJobs*nMachines)
	for j := 0; j < nJobs; j++ {
		rng.Shuffle(len(machines), func(a, b int) {
			machines[a], machines[b] = machines[b], machines[a]
		})
		for _, m := range machines {
			duration := float64(durMin + rng.Intn(durMax-durMin+1))
			ops = append(ops, types.NewOperation(j, m, duration))
		}
	}

	return New("random", ops)
}

// Name returns the instance name.
func (p *Problem) Name() string {
	return p.name
}

// Ops returns the operations in problem order. The returned slice must
// not be mutated.
func (p *Problem) Ops() []types.Operation {
	return p.ops
}

// Jobs returns the unique job IDs in ascending order.
func (p *Problem) Jobs() []int {
	return p.jobs
}

// Machines returns the unique machine IDs in ascending order.
func (p *Problem) Machines() []int {
	return p.machines
}

// Optimum returns the best known makespan, if any.
func (p *Problem) Optimum() types.Optimum {
	return p.optimum
}

// WithOptimum returns a copy of the problem carrying the given optimum.
func (p *Problem) WithOptimum(opt types.Optimum) *Problem {
	clone := *p
	clone.optimum = opt
	return &clone
}

// Named returns a copy of the problem under a new name.
func (p *Problem) Named(name string) *Problem {
	clone := *p
	clone.name = name
	return &clone
}

// JobOps returns the operations of one job in dispatching order, as
// indices into Ops.
func (p *Problem) JobOps(job int) []int {
	var indices []int
	for i, op := range p.ops {
		if op.Job == job {
			indices = append(indices, i)
		}
	}
	return indices
}

// Scale returns (number of jobs, number of machines).
func (p *Problem) Scale() (int, int) {
	return len(p.jobs), len(p.machines)
}

func collectJobsAndMachines(ops []types.Operation) (jobs, machines []int) {
	jobSet := make(map[int]struct{})
	machineSet := make(map[int]struct{})
	for _, op := range ops {
		jobSet[op.Job] = struct{}{}
		machineSet[op.Machine] = struct{}{}
	}
	for j := range jobSet {
		jobs = append(jobs, j)
	}
	for m := range machineSet {
		machines = append(machines, m)
	}
	sort.Ints(jobs)
	sort.Ints(machines)
	return jobs, machines
}
