package schedule

import (
	"errors"
	"fmt"

	"github.com/yesoreyeram/thittam/pkg/types"
)

// Sentinel errors for schedule operations
var (
	// ErrChainMismatch indicates an attempt to link steps with differing
	// job or machine IDs.
	ErrChainMismatch = errors.New("schedule: chain mismatch")

	// ErrInfeasible indicates the disjunctive graph has a cycle, so no
	// topological order and no valid start times exist.
	ErrInfeasible = errors.New("schedule: infeasible")
)

func chainMismatch(chain string, a, b types.Operation) error {
	return fmt.Errorf("%w: cannot link %s -> %s in %s chain", ErrChainMismatch, a, b, chain)
}
