package reqtrace

import (
	"context"
	"sync/atomic"

	"github.com/aalemi-dev/sentry-lab/monitor"
)

type traceContextKey struct{}

// TraceContext is the per-request tracing state. It is owned by the request
// it was created for.
type TraceContext struct {
	// Span is the request span.
	Span monitor.Span

	finish    func(status int)
	finalized atomic.Bool
}

// NewTraceContext wraps span. finish, if non-nil, runs after the span has
// ended with the final status.
func NewTraceContext(span monitor.Span, finish func(status int)) *TraceContext {
	return &TraceContext{Span: span, finish: finish}
}

// Finalize stamps status on the span and ends it. Only the first call has
// any effect; it returns false for every later call.
func (tc *TraceContext) Finalize(status int) bool {
	if tc == nil || !tc.finalized.CompareAndSwap(false, true) {
		return false
	}
	tc.Span.SetHTTPStatus(status)
	tc.Span.End()
	if tc.finish != nil {
		tc.finish(status)
	}
	return true
}

// Finalized reports whether Finalize has run.
func (tc *TraceContext) Finalized() bool {
	return tc.finalized.Load()
}

// FromContext returns the TraceContext stored on ctx.
func FromContext(ctx context.Context) (*TraceContext, bool) {
	tc, ok := ctx.Value(traceContextKey{}).(*TraceContext)
	return tc, ok
}

func withTraceContext(ctx context.Context, tc *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, tc)
}
