package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gefyra/gefyra/internal/boundaries/out"
)

const instrumentationName = "github.com/gefyra/gefyra"

var _ out.NetworkTelemetry = (*Recorder)(nil)

// Metrics holds gefyra-specific OTel metrics instruments.
type Metrics struct {
	// Operations
	OperationTotal    metric.Int64Counter
	OperationDuration metric.Float64Histogram

	// Containers found attached at teardown
	ContainersKilled  metric.Int64Counter
	ContainersSkipped metric.Int64Counter
	ContainersFailed  metric.Int64Counter
}

// NewMetrics creates all gefyra metric instruments on the given meter provider.
// All fields are always initialized; a noop provider yields noop instruments.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationName)
	m := &Metrics{}
	var err error

	if m.OperationTotal, err = meter.Int64Counter("gefyra.network.operations",
		metric.WithDescription("Network lifecycle operations by outcome")); err != nil {
		return nil, err
	}
	if m.OperationDuration, err = meter.Float64Histogram("gefyra.network.operation.duration_seconds",
		metric.WithDescription("Network lifecycle operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10)); err != nil {
		return nil, err
	}
	if m.ContainersKilled, err = meter.Int64Counter("gefyra.containers.killed",
		metric.WithDescription("Managed containers killed before network removal")); err != nil {
		return nil, err
	}
	if m.ContainersSkipped, err = meter.Int64Counter("gefyra.containers.skipped",
		metric.WithDescription("Foreign containers left running on the network")); err != nil {
		return nil, err
	}
	if m.ContainersFailed, err = meter.Int64Counter("gefyra.containers.kill_failures",
		metric.WithDescription("Containers that could not be inspected or killed")); err != nil {
		return nil, err
	}

	return m, nil
}

// Recorder implements out.NetworkTelemetry with one span and one operation
// count per network operation.
type Recorder struct {
	tracer  trace.Tracer
	metrics *Metrics
}

// NewRecorder creates a recorder on the providers held by p. Signals that are
// disabled in p fall back to the global providers, which are noop unless set.
func NewRecorder(p *Provider) (*Recorder, error) {
	var (
		mp metric.MeterProvider = otel.GetMeterProvider()
		tp trace.TracerProvider = otel.GetTracerProvider()
	)
	if p != nil && p.MeterProvider != nil {
		mp = p.MeterProvider
	}
	if p != nil && p.TracerProvider != nil {
		tp = p.TracerProvider
	}
	return newRecorder(mp, tp)
}

func newRecorder(mp metric.MeterProvider, tp trace.TracerProvider) (*Recorder, error) {
	m, err := NewMetrics(mp)
	if err != nil {
		return nil, err
	}
	return &Recorder{
		tracer:  tp.Tracer(instrumentationName),
		metrics: m,
	}, nil
}

// Start opens a span named after the operation. The returned function closes
// it and records the outcome.
func (r *Recorder) Start(ctx context.Context, operation, network string) (context.Context, out.EndFunc) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "network."+operation,
		trace.WithAttributes(attribute.String("gefyra.network", network)),
	)

	return ctx, func(outcome string, err error) {
		attrs := metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		)
		r.metrics.OperationTotal.Add(ctx, 1, attrs)
		r.metrics.OperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)

		span.SetAttributes(attribute.String("gefyra.outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// RecordKills counts the containers processed by a kill pass.
func (r *Recorder) RecordKills(ctx context.Context, network string, killed, skipped, failed int) {
	attrs := metric.WithAttributes(attribute.String("gefyra.network", network))
	r.metrics.ContainersKilled.Add(ctx, int64(killed), attrs)
	r.metrics.ContainersSkipped.Add(ctx, int64(skipped), attrs)
	r.metrics.ContainersFailed.Add(ctx, int64(failed), attrs)
}
