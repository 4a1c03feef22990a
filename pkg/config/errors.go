package config

import "errors"

// Sentinel errors for configuration validation
var (
	ErrInvalidWorkers   = errors.New("config: workers must be positive")
	ErrInvalidMaxTime   = errors.New("config: max solve time must not be negative")
	ErrInvalidDurations = errors.New("config: invalid duration range")
	ErrInvalidLogLevel  = errors.New("config: unknown log level")
)
