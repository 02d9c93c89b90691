package xor

import (
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Cipher.
type Option func(*options)

type options struct {
	logger         logr.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	err            error // deferred validation error from options
}

func defaultOptions() *options {
	return &options{
		logger:         logr.Discard(),
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
}

// WithLogger sets the logger used for debug records, e.g. when Process
// degrades to an empty result. Key and payload content is never logged.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMeterProvider sets the meter provider for call and byte counters.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		if mp == nil {
			o.err = fmt.Errorf("%w: meter provider is nil", ErrInvalidArgument)
			return
		}
		o.meterProvider = mp
	}
}

// WithTracerProvider sets the tracer provider used by ProcessContext.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if o.err != nil {
			return
		}
		if tp == nil {
			o.err = fmt.Errorf("%w: tracer provider is nil", ErrInvalidArgument)
			return
		}
		o.tracerProvider = tp
	}
}
