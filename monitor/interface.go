package monitor

import (
	"context"
	"net/http"
	"time"
)

// Client is a monitoring backend. Implementations must be safe for
// concurrent use by many in-flight requests.
type Client interface {
	// StartSpan starts a span and returns a context carrying it.
	StartSpan(ctx context.Context, name string, opts SpanOptions) (context.Context, Span)

	// ReportError sends err to the backend. extra is attached as additional
	// context and may be nil.
	ReportError(ctx context.Context, err error, extra map[string]interface{})

	// Flush waits up to timeout for pending events to be delivered and
	// reports whether the queue drained.
	Flush(timeout time.Duration) bool
}

// Span is an active unit of work. A span belongs to exactly one request.
type Span interface {
	// SetHTTPStatus records the response status and derives the span status.
	SetHTTPStatus(code int)

	// SetAttributes adds key/value data to the span.
	SetAttributes(attrs map[string]interface{})

	// End finishes the span. Calls after the first are ignored.
	End()

	// TraceID returns the hex trace id, or "" when the backend has none.
	TraceID() string
}

// SpanOptions configures StartSpan.
type SpanOptions struct {
	// Op is the span operation, for example "http.server".
	Op string

	// Attributes are attached to the span at creation.
	Attributes map[string]interface{}

	// Scope is attached to the span and to errors reported under it.
	Scope ScopeData

	// Request, when set, is used to continue a trace propagated by the caller.
	Request *http.Request
}

// ScopeData is contextual data for everything reported within a span.
type ScopeData struct {
	// IPAddress is the caller's address, empty when unknown.
	IPAddress string

	// Tags are indexed key/value pairs.
	Tags map[string]string
}
