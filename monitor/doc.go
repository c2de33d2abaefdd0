// Package monitor is the seam between the integration and the
// error/performance monitoring SDK.
//
// Client and Span describe the five calls the integration needs from a
// backend (start a span, stamp its HTTP status, end it, report an error,
// flush). SentryClient implements them with github.com/getsentry/sentry-go;
// the tracer package provides an OpenTelemetry implementation.
//
// # Ownership
//
// SentryClient owns one *sentry.Client and a root *sentry.Hub built by
// NewSentryClient. Nothing in this package calls sentry.Init or touches the
// global hub, so several integrations can coexist in one process (and in one
// test binary). Each span runs on a clone of the root hub whose scope carries
// the caller's IP address and request tags.
//
// # Usage
//
//	client, err := monitor.NewSentryClient(monitor.Config{
//	    DSN:     os.Getenv("SENTRY_DSN"),
//	    Release: "api@1.4.0",
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Flush(2 * time.Second)
//
//	ctx, span := client.StartSpan(ctx, "GET /api/users", monitor.SpanOptions{
//	    Op:    "http.server",
//	    Scope: monitor.ScopeData{IPAddress: "1.2.3.4"},
//	})
//	span.SetHTTPStatus(http.StatusOK)
//	span.End()
//
// Handlers reach the client serving their request with ClientFromContext.
package monitor
