package reqtrace

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/httperror"
	"github.com/aalemi-dev/sentry-lab/monitor"
	"github.com/aalemi-dev/sentry-lab/observability"
)

// StatusClientClosedRequest is stamped on spans whose request was cancelled
// before a response was written.
const StatusClientClosedRequest = 499

const component = "reqtrace"

// Tracer implements the request span lifecycle and error reporting.
type Tracer struct {
	client monitor.Client
	filter PathFilter
	ignore httperror.IgnoreList
	op     string

	logger   Logger
	observer observability.Observer
}

// NewTracer returns a Tracer reporting to client.
func NewTracer(client monitor.Client, cfg Config) *Tracer {
	op := cfg.Op
	if op == "" {
		op = "http.server"
	}
	return &Tracer{
		client: client,
		filter: PathFilter(append([]string(nil), cfg.PathPrefixes...)),
		ignore: httperror.NewIgnoreList(cfg.IgnoreStatusCodes...),
		op:     op,
	}
}

// WithLogger sets the logger used for swallowed backend failures.
func (t *Tracer) WithLogger(l Logger) *Tracer {
	t.logger = l
	return t
}

// WithObserver sets the observer notified of spans and reports.
func (t *Tracer) WithObserver(o observability.Observer) *Tracer {
	t.observer = o
	return t
}

// Register subscribes the tracer to h.
func (t *Tracer) Register(h *hooks.Hooks) {
	h.OnRequest(t.OnRequestStart)
	h.OnError(t.OnError)
	h.OnAfterResponse(t.OnResponseEnd)
}

// OnRequestStart starts the request span when the path matches the filter.
func (t *Tracer) OnRequestStart(ev *hooks.RequestEvent) {
	if !t.filter.Match(ev.Path()) {
		return
	}
	if _, exists := FromContext(ev.Context()); exists {
		return
	}

	r := ev.Request()
	ip, _ := ResolveIP(r)
	opts := monitor.SpanOptions{
		Op:         t.op,
		Attributes: spanAttributes(r),
		Scope: monitor.ScopeData{
			IPAddress: ip,
			Tags:      map[string]string{"request_id": requestID(r)},
		},
		Request: r,
	}

	var (
		ctx  context.Context
		span monitor.Span
	)
	start := time.Now()
	ok := t.safely(ev.Context(), "start span", func() {
		ctx, span = t.client.StartSpan(ev.Context(), spanName(r), opts)
	})
	if !ok || span == nil || ctx == nil {
		return
	}

	path, method := ev.Path(), ev.Method()
	tc := NewTraceContext(span, func(status int) {
		observability.Notify(t.observer, observability.OperationContext{
			Component:   component,
			Operation:   "span",
			Resource:    path,
			SubResource: method,
			Duration:    time.Since(start),
			Metadata:    map[string]interface{}{"status": status},
		})
	})
	ev.SetContext(withTraceContext(ctx, tc))
}

// OnError reports err unless it is ignored, then finalizes the request span.
func (t *Tracer) OnError(ev *hooks.RequestEvent, err error) {
	if err == nil {
		return
	}
	ctx := ev.Context()
	code, isHTTP := httperror.StatusCode(err)

	if isHTTP && t.ignore.Contains(code) {
		observability.Notify(t.observer, observability.OperationContext{
			Component:   component,
			Operation:   "ignore",
			Resource:    ev.Path(),
			SubResource: ev.Method(),
			Error:       err,
			Metadata:    map[string]interface{}{"status": code},
		})
	} else {
		start := time.Now()
		t.safely(ctx, "report error", func() {
			t.client.ReportError(ctx, err, map[string]interface{}{
				"method": ev.Method(),
				"path":   ev.Path(),
			})
		})
		observability.Notify(t.observer, observability.OperationContext{
			Component:   component,
			Operation:   "report",
			Resource:    ev.Path(),
			SubResource: ev.Method(),
			Duration:    time.Since(start),
			Error:       err,
		})
	}

	tc, ok := FromContext(ctx)
	if !ok {
		return
	}
	status := code
	if !isHTTP {
		status = ev.ResponseStatus()
		if !ev.Written() {
			status = http.StatusInternalServerError
		}
	}
	t.finalize(ctx, tc, status)
}

// OnResponseEnd finalizes the request span unless OnError already did.
func (t *Tracer) OnResponseEnd(ev *hooks.RequestEvent) {
	ctx := ev.Context()
	tc, ok := FromContext(ctx)
	if !ok || tc.Finalized() {
		return
	}
	status := ev.ResponseStatus()
	if ctx.Err() != nil && !ev.Written() {
		status = StatusClientClosedRequest
	}
	t.finalize(ctx, tc, status)
}

func (t *Tracer) finalize(ctx context.Context, tc *TraceContext, status int) {
	t.safely(ctx, "finalize span", func() {
		tc.Finalize(status)
	})
}

// safely runs fn, converting a panic into a logged failure. It reports
// whether fn returned normally.
func (t *Tracer) safely(ctx context.Context, action string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if t.logger != nil {
				t.logger.ErrorWithContext(ctx, "monitoring backend call failed", fmt.Errorf("%v", r), map[string]interface{}{
					"action": action,
				})
			}
		}
	}()
	fn()
	return true
}
