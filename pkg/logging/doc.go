// Package logging provides structured logging for the scheduling
// framework.
//
// # Overview
//
// The logging package wraps log/slog with the contextual fields that
// matter while solving: run ID, problem name, solver name and dispatching
// rule. Derived loggers carry those fields on every entry.
//
// # Basic Usage
//
//	import "github.com/yesoreyeram/thittam/pkg/logging"
//
//	logger := logging.New(logging.Config{Level: "info"})
//	runLogger := logger.WithRunID(runID).WithProblem("ft06").WithSolver("SPT")
//	runLogger.Info("solve started")
//	runLogger.Info("better solution", "makespan", 59.0)
//
// # Context Integration
//
//	ctx = logger.WithContext(ctx)
//	...
//	logging.FromContext(ctx).Debug("dispatching", "step", id)
//
// # Output Formats
//
// JSON output is the default; Pretty switches to the text handler for
// interactive runs. Level accepts debug, info, warn and error.
//
// # Thread Safety
//
// Loggers are immutable after creation and safe for concurrent use.
package logging
