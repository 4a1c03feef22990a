package problem

import "errors"

// Sentinel errors for problem construction
var (
	// ErrFileNotFound indicates the instance file does not exist.
	ErrFileNotFound = errors.New("problem: file not found")

	// ErrMalformedInput indicates the instance data violates the text format.
	ErrMalformedInput = errors.New("problem: malformed input")

	// ErrEmptyProblem indicates a generator was asked for zero jobs or machines.
	ErrEmptyProblem = errors.New("problem: jobs and machines must be positive")
)
