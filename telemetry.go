package xor

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName is the otel scope name for tracers and meters.
const instrumentationName = "github.com/rbaliyan/config-xor"

// Attribute keys recorded on spans and metrics.
const (
	attrDirection = attribute.Key("xor.direction")
	attrOutcome   = attribute.Key("xor.outcome")
)

// Process outcomes.
const (
	outcomeOK       = "ok"
	outcomeDegraded = "degraded"
)

type telemetry struct {
	tracer trace.Tracer
	calls  metric.Int64Counter
	bytes  metric.Int64Counter
}

func newTelemetry(mp metric.MeterProvider, tp trace.TracerProvider) (*telemetry, error) {
	meter := mp.Meter(instrumentationName)

	calls, err := meter.Int64Counter("xor.process.calls",
		metric.WithDescription("Number of Process calls by detected direction and outcome."),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xor: failed to create process counter: %w", err)
	}

	bytes, err := meter.Int64Counter("xor.transform.bytes",
		metric.WithDescription("Number of payload bytes passed through the XOR transform."),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("xor: failed to create byte counter: %w", err)
	}

	return &telemetry{
		tracer: tp.Tracer(instrumentationName),
		calls:  calls,
		bytes:  bytes,
	}, nil
}

// start opens a span. A nil receiver (zero-value Cipher) yields the span already in ctx.
func (t *telemetry) start(ctx context.Context, name string) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, name)
}

func (t *telemetry) recordBytes(ctx context.Context, n int) {
	if t == nil {
		return
	}
	t.bytes.Add(ctx, int64(n))
}

func (t *telemetry) recordCall(ctx context.Context, d Direction, outcome string) {
	if t == nil {
		return
	}
	t.calls.Add(ctx, 1, metric.WithAttributes(
		attrDirection.String(d.String()),
		attrOutcome.String(outcome),
	))
}
