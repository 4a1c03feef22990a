package types

import "fmt"

// ErrNegativeDuration creates an error for an operation with negative duration.
func ErrNegativeDuration(job, machine int, duration float64) error {
	return fmt.Errorf("operation (J%d, M%d) has negative duration %g", job, machine, duration)
}

// ErrUnknownKind creates an error for an unrecognised operation kind.
func ErrUnknownKind(kind Kind) error {
	return fmt.Errorf("unknown operation kind: %s", kind)
}
