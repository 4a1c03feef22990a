package benchmark

import "errors"

// Sentinel errors for benchmark lookup
var (
	// ErrBenchmarkNotFound indicates the name is missing from the index.
	ErrBenchmarkNotFound = errors.New("benchmark: not found")

	// ErrInvalidIndex indicates the index document fails schema validation.
	ErrInvalidIndex = errors.New("benchmark: invalid index")
)
