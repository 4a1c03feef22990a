// Package telemetry provides OpenTelemetry metrics and tracing for solve
// runs, exported through Prometheus.
package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Service name for telemetry
	serviceName = "thittam-scheduler"

	// Metric names
	metricSolveRuns     = "solver.runs.total"
	metricSolveDuration = "solver.run.duration"
	metricSolveSuccess  = "solver.runs.success.total"
	metricSolveFailure  = "solver.runs.failure.total"
	metricImprovements  = "solver.improvements.total"
	metricDispatches    = "solver.dispatches.total"
	metricMakespan      = "solver.makespan"
)

// Provider manages OpenTelemetry setup and provides access to tracers and meters.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	// Metrics instruments
	solveRuns     metric.Int64Counter
	solveDuration metric.Float64Histogram
	solveSuccess  metric.Int64Counter
	solveFailure  metric.Int64Counter
	improvements  metric.Int64Counter
	dispatches    metric.Int64Counter
	makespan      metric.Float64Histogram

	mu sync.RWMutex
}

// Config holds telemetry configuration
type Config struct {
	// ServiceName is the name of the service for telemetry
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Environment (e.g., "production", "staging", "development")
	Environment string

	// EnableTracing enables distributed tracing
	EnableTracing bool

	// EnableMetrics enables metrics collection
	EnableMetrics bool
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with Prometheus metrics
// exporter. It initializes OpenTelemetry with the given configuration and
// returns a provider that can be used to create tracers and record metrics.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

// initMetrics initializes the metrics provider with Prometheus exporter
func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	return p.createMetricInstruments()
}

// initTracing initializes the tracing provider
func (p *Provider) initTracing() {
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

// createMetricInstruments creates all metric instruments
func (p *Provider) createMetricInstruments() error {
	var err error

	p.solveRuns, err = p.meter.Int64Counter(
		metricSolveRuns,
		metric.WithDescription("Total number of solve runs"),
	)
	if err != nil {
		return err
	}

	p.solveDuration, err = p.meter.Float64Histogram(
		metricSolveDuration,
		metric.WithDescription("Solve run duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.solveSuccess, err = p.meter.Int64Counter(
		metricSolveSuccess,
		metric.WithDescription("Total number of successful solve runs"),
	)
	if err != nil {
		return err
	}

	p.solveFailure, err = p.meter.Int64Counter(
		metricSolveFailure,
		metric.WithDescription("Total number of failed solve runs"),
	)
	if err != nil {
		return err
	}

	p.improvements, err = p.meter.Int64Counter(
		metricImprovements,
		metric.WithDescription("Total number of improved solutions found"),
	)
	if err != nil {
		return err
	}

	p.dispatches, err = p.meter.Int64Counter(
		metricDispatches,
		metric.WithDescription("Total number of step dispatches"),
	)
	if err != nil {
		return err
	}

	p.makespan, err = p.meter.Float64Histogram(
		metricMakespan,
		metric.WithDescription("Makespan of reported solutions"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordRunStart records the start of a solve run.
func (p *Provider) RecordRunStart(ctx context.Context, problem, solver string) {
	if p.solveRuns == nil {
		return
	}
	p.solveRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("problem", problem),
		attribute.String("solver", solver),
	))
}

// RecordRunEnd records the outcome and duration of a solve run.
func (p *Provider) RecordRunEnd(ctx context.Context, problem, solver string, success bool, elapsed time.Duration) {
	if p.solveDuration == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("problem", problem),
		attribute.String("solver", solver),
	)
	p.solveDuration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	if success {
		p.solveSuccess.Add(ctx, 1, attrs)
	} else {
		p.solveFailure.Add(ctx, 1, attrs)
	}
}

// RecordImprovement records a better solution with its makespan.
func (p *Provider) RecordImprovement(ctx context.Context, problem, solver string, makespan float64) {
	if p.improvements == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("problem", problem),
		attribute.String("solver", solver),
	)
	p.improvements.Add(ctx, 1, attrs)
	p.makespan.Record(ctx, makespan, attrs)
}

// RecordDispatches adds to the dispatch counter.
func (p *Provider) RecordDispatches(ctx context.Context, n int64) {
	if p.dispatches == nil {
		return
	}
	p.dispatches.Add(ctx, n)
}

// Shutdown flushes and stops the telemetry pipelines.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
