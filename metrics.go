package eventz

//go:generate mockgen -destination=mock/mock_metrics.go -package=mockeventz -source=metrics.go

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics provides observability data for registry monitoring.
// Counter fields are updated with atomic operations.
// Keys and RegisteredListeners are computed under the registry lock.
type Metrics struct {
	// Registration Metrics
	Keys                int64 // Keys currently holding a slot
	RegisteredListeners int64 // Registrations across all keys

	// Dispatch Counters (atomic)
	Invocations    int64 // Invocations that ran every listener to completion
	ListenerCalls  int64 // Listener calls made by those invocations
	TypeMismatches int64 // Operations rejected with ErrTypeMismatch
}

// MetricsRecorder receives dispatch measurements.
// Use NewMetricsRecorder for OpenTelemetry or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordInvoke records a completed invocation of key.
	RecordInvoke(ctx context.Context, key Key, listeners int, duration time.Duration)

	// RecordTypeMismatch records an operation rejected for using the wrong signature.
	RecordTypeMismatch(ctx context.Context, key Key, existing, requested string)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

// RecordInvoke does nothing.
func (NoopMetrics) RecordInvoke(context.Context, Key, int, time.Duration) {}

// RecordTypeMismatch does nothing.
func (NoopMetrics) RecordTypeMismatch(context.Context, Key, string, string) {}

// meterName scopes the instruments created by NewMetricsRecorder.
const meterName = "github.com/zoobzio/eventz"

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	invocations    metric.Int64Counter
	listenerCalls  metric.Int64Counter
	invokeLatency  metric.Float64Histogram
	typeMismatches metric.Int64Counter
}

func newOtelMetrics(provider metric.MeterProvider) (*otelMetrics, error) {
	meter := provider.Meter(meterName)

	invocations, err := meter.Int64Counter("eventz.invocations",
		metric.WithDescription("Number of completed event invocations"),
	)
	if err != nil {
		return nil, err
	}

	listenerCalls, err := meter.Int64Counter("eventz.listener_calls",
		metric.WithDescription("Number of listener calls made by invocations"),
	)
	if err != nil {
		return nil, err
	}

	invokeLatency, err := meter.Float64Histogram("eventz.invoke.latency_ms",
		metric.WithDescription("Invocation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	typeMismatches, err := meter.Int64Counter("eventz.type_mismatches",
		metric.WithDescription("Number of operations rejected for a signature mismatch"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		invocations:    invocations,
		listenerCalls:  listenerCalls,
		invokeLatency:  invokeLatency,
		typeMismatches: typeMismatches,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by provider.
// If instrument creation fails, it logs a warning and returns NoopMetrics.
//
//	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	events := eventz.New(eventz.WithRecorder(eventz.NewMetricsRecorder(provider)))
func NewMetricsRecorder(provider metric.MeterProvider) MetricsRecorder {
	m, err := newOtelMetrics(provider)
	if err != nil {
		slog.Warn("eventz metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordInvoke records an invocation.
func (m *otelMetrics) RecordInvoke(ctx context.Context, key Key, listeners int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("event.key", key.Text()))

	m.invocations.Add(ctx, 1, attrs)
	m.listenerCalls.Add(ctx, int64(listeners), attrs)
	m.invokeLatency.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)
}

// RecordTypeMismatch records a rejected operation.
func (m *otelMetrics) RecordTypeMismatch(ctx context.Context, key Key, existing, requested string) {
	m.typeMismatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event.key", key.Text()),
		attribute.String("signature.existing", existing),
		attribute.String("signature.requested", requested),
	))
}
