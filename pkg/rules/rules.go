// Package rules is the catalogue of priority dispatching rules. A rule
// scores an imminent step against the current solution; the lowest key
// wins the next dispatch.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yesoreyeram/thittam/pkg/schedule"
)

// Key is a two-component lexicographic priority. Scalar rules use Primary
// only; composite rules (HH, IHH) break Primary ties with Secondary.
// Smaller keys mean higher priority.
type Key struct {
	Primary   float64
	Secondary float64
}

// Less reports whether k has strictly higher priority than other.
func (k Key) Less(other Key) bool {
	if k.Primary != other.Primary {
		return k.Primary < other.Primary
	}
	return k.Secondary < other.Secondary
}

// Rule scores one step of the dispatch frontier. Implementations must not
// mutate the solution.
type Rule func(id schedule.StepID, s *schedule.Solution) Key

func scalar(v float64) Key {
	return Key{Primary: v}
}

// SPT prioritises the shortest processing time.
func SPT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(s.Step(id).Source.Duration)
}

// LPT prioritises the longest processing time.
func LPT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-s.Step(id).Source.Duration)
}

// SPS prioritises the shortest process sequence (fewest operations in the
// job).
func SPS(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(float64(s.JobOpCount(s.Step(id).Source.Job)))
}

// LPS prioritises the longest process sequence.
func LPS(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-float64(s.JobOpCount(s.Step(id).Source.Job)))
}

// STPT prioritises the shortest total processing time of the job.
func STPT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(s.JobWork(s.Step(id).Source.Job))
}

// LTPT prioritises the longest total processing time of the job.
func LTPT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-s.JobWork(s.Step(id).Source.Job))
}

// ECT prioritises the earliest creation time: the step whose job
// predecessor finished first.
func ECT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(s.Step(s.Step(id).PrevJob).EndTime())
}

// LCT prioritises the latest creation time.
func LCT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-s.Step(s.Step(id).PrevJob).EndTime())
}

// SWT prioritises the shortest waiting time: how long the step would sit
// behind its machine's current tail after becoming available.
func SWT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(waitingTime(id, s))
}

// LWT prioritises the longest waiting time.
func LWT(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-waitingTime(id, s))
}

func waitingTime(id schedule.StepID, s *schedule.Solution) float64 {
	step := s.Step(id)
	arrive := s.Step(step.PrevJob).EndTime()
	tail := s.TailMachine(s.MachineHead(step.Source.Machine))
	return max(s.Step(tail).EndTime()-arrive, 0)
}

// LTWR prioritises the least total work remaining in the job.
func LTWR(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(s.RemainingWork(id))
}

// MTWR prioritises the most total work remaining in the job.
func MTWR(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-s.RemainingWork(id))
}

// EST prioritises the earliest estimated start time: what the start would
// become if the step were dispatched next on its machine.
func EST(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(s.EstimatedStart(id))
}

// LST prioritises the latest estimated start time.
func LST(id schedule.StepID, s *schedule.Solution) Key {
	return scalar(-s.EstimatedStart(id))
}

// HH is the heuristic composite: earliest estimated start first, ties
// broken by the most remaining work discounted by 1.5 times the step's
// own duration.
func HH(id schedule.StepID, s *schedule.Solution) Key {
	remaining := s.RemainingWork(id) - 1.5*s.Step(id).Source.Duration
	return Key{Primary: s.EstimatedStart(id), Secondary: -remaining}
}

// IHH is the improved composite: earliest estimated start first, ties
// broken by the most remaining work per unit of the step's duration.
func IHH(id schedule.StepID, s *schedule.Solution) Key {
	ratio := s.RemainingWork(id) / s.Step(id).Source.Duration
	return Key{Primary: s.EstimatedStart(id), Secondary: -ratio}
}

var catalogue = map[string]Rule{
	"SPT":  SPT,
	"LPT":  LPT,
	"SPS":  SPS,
	"LPS":  LPS,
	"STPT": STPT,
	"LTPT": LTPT,
	"ECT":  ECT,
	"LCT":  LCT,
	"SWT":  SWT,
	"LWT":  LWT,
	"LTWR": LTWR,
	"MTWR": MTWR,
	"EST":  EST,
	"LST":  LST,
	"HH":   HH,
	"IHH":  IHH,
}

// Get returns the rule registered under the given tag (case insensitive).
func Get(tag string) (Rule, error) {
	rule, ok := catalogue[strings.ToUpper(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRule, tag)
	}
	return rule, nil
}

// Tags returns the registered rule tags in lexicographic order.
func Tags() []string {
	tags := make([]string, 0, len(catalogue))
	for tag := range catalogue {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
