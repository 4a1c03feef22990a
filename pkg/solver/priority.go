package solver

import (
	"context"
	"fmt"

	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/rules"
	"github.com/yesoreyeram/thittam/pkg/schedule"
)

// PriorityDispatch constructs one schedule by repeatedly dispatching the
// highest-priority step of the frontier, as scored by a dispatching rule.
type PriorityDispatch struct {
	name string
	rule rules.Rule
}

// NewPriorityDispatch creates a priority-dispatch algorithm from a
// catalogue rule tag. Unknown tags fail with rules.ErrInvalidRule.
func NewPriorityDispatch(tag string) (*PriorityDispatch, error) {
	rule, err := rules.Get(tag)
	if err != nil {
		return nil, err
	}
	return &PriorityDispatch{
		name: fmt.Sprintf("priority-dispatch(%s)", tag),
		rule: rule,
	}, nil
}

// NewPriorityDispatchRule creates a priority-dispatch algorithm around a
// user-defined rule.
func NewPriorityDispatchRule(name string, rule rules.Rule) (*PriorityDispatch, error) {
	if rule == nil {
		return nil, rules.ErrInvalidRule
	}
	return &PriorityDispatch{name: name, rule: rule}, nil
}

// Name implements Algorithm.
func (a *PriorityDispatch) Name() string {
	return a.name
}

// Solve implements Algorithm: one full construction pass over an empty
// disjunctive-graph solution, then a single report.
func (a *PriorityDispatch) Solve(ctx context.Context, p *problem.Problem, report func(*schedule.Solution)) error {
	sol := schedule.New(p, false)
	if err := a.iterate(ctx, sol); err != nil {
		return err
	}
	report(sol)
	return nil
}

// iterate runs the dispatching loop: score the frontier, dispatch the
// argmin (ties keep the first in list), then slide the frontier slot to
// the dispatched step's job successor.
func (a *PriorityDispatch) iterate(ctx context.Context, sol *schedule.Solution) error {
	frontier := sol.ImminentOps()
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		best := 0
		bestKey := a.rule(frontier[0], sol)
		for i := 1; i < len(frontier); i++ {
			if key := a.rule(frontier[i], sol); key.Less(bestKey) {
				best, bestKey = i, key
			}
		}

		step := frontier[best]
		if err := sol.Dispatch(step, true); err != nil {
			return err
		}

		if next := sol.Step(step).NextJob; next != schedule.None {
			frontier[best] = next
		} else {
			frontier = append(frontier[:best], frontier[best+1:]...)
		}
	}
	return nil
}
