// Package telemetry provides observability for solve runs using
// OpenTelemetry.
//
// # Metrics
//
// The provider exports the following instruments through the Prometheus
// exporter, labelled by problem and solver name (except the dispatch
// counter, which carries no labels):
//
//	solver.runs.total           - solve runs started
//	solver.run.duration         - run duration histogram (ms)
//	solver.runs.success.total   - runs that produced a feasible schedule
//	solver.runs.failure.total   - runs that failed
//	solver.improvements.total   - improved solutions reported
//	solver.dispatches.total     - step dispatches passed to RecordDispatches
//	                              (the Observer bridge does not record them)
//	solver.makespan             - makespan histogram of reported solutions
//
// # Tracing
//
// Each solve run opens one span ("solver.solve") annotated with the run
// ID; improvements become span events and failures mark the span with an
// error status.
//
// # Wiring
//
// The Observer type bridges the observer package to the instruments, so
// solvers stay unaware of telemetry:
//
//	provider, _ := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
//	mgr.Register(telemetry.NewObserver(provider))
//
// Metrics become scrapeable once the host process serves promhttp.
package telemetry
