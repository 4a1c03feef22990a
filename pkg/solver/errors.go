package solver

import "errors"

// Sentinel errors for solve runs
var (
	// ErrAlreadyRunning indicates Solve was invoked while a prior run of
	// the same driver had not completed.
	ErrAlreadyRunning = errors.New("solver: already running")

	// ErrNoSolution indicates the algorithm terminated without reporting
	// any solution.
	ErrNoSolution = errors.New("solver: no solution found")
)
