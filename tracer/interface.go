package tracer

import (
	"context"

	"github.com/aalemi-dev/sentry-lab/monitor"
)

// Tracer is the OpenTelemetry monitoring backend.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	monitor.Client

	// Shutdown flushes pending spans and stops the exporter. The tracer
	// must not be used afterwards.
	Shutdown(ctx context.Context) error
}

// Span is a request span backed by an OpenTelemetry span.
type Span interface {
	monitor.Span

	// RecordError records err on the span and marks it failed.
	RecordError(err error)
}
