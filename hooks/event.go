package hooks

import (
	"context"
	"net/http"
)

type eventContextKey struct{}

// StatusFunc reports the response status written so far and whether anything
// has been written.
type StatusFunc func() (status int, written bool)

// RequestEvent is the per-request value passed to every handler. It is owned
// by the goroutine serving the request and must not be shared.
type RequestEvent struct {
	request *http.Request
	status  StatusFunc
	err     error
}

// NewRequestEvent wraps r. status may be nil, in which case the response
// status is reported as 200/unwritten.
func NewRequestEvent(r *http.Request, status StatusFunc) *RequestEvent {
	ev := &RequestEvent{status: status}
	ev.request = r.WithContext(context.WithValue(r.Context(), eventContextKey{}, ev))
	return ev
}

// EventFromContext returns the event serving ctx.
func EventFromContext(ctx context.Context) (*RequestEvent, bool) {
	ev, ok := ctx.Value(eventContextKey{}).(*RequestEvent)
	return ev, ok
}

// Request returns the request carrying the current context. Hosts must pass
// this request, not the original one, to downstream handlers.
func (e *RequestEvent) Request() *http.Request {
	return e.request
}

// Context returns the request context.
func (e *RequestEvent) Context() context.Context {
	return e.request.Context()
}

// SetContext replaces the request context.
func (e *RequestEvent) SetContext(ctx context.Context) {
	e.request = e.request.WithContext(ctx)
}

// WithValue stores key/val on the request context.
func (e *RequestEvent) WithValue(key, val any) {
	e.SetContext(context.WithValue(e.Context(), key, val))
}

// Path returns the URL path.
func (e *RequestEvent) Path() string {
	return e.request.URL.Path
}

// Method returns the HTTP method.
func (e *RequestEvent) Method() string {
	return e.request.Method
}

// ResponseStatus returns the status written so far. net/http sends 200 when a
// handler returns without writing, so that is the default.
func (e *RequestEvent) ResponseStatus() int {
	status, _ := e.response()
	return status
}

// Written reports whether the response header has been sent.
func (e *RequestEvent) Written() bool {
	_, written := e.response()
	return written
}

func (e *RequestEvent) response() (int, bool) {
	if e.status == nil {
		return http.StatusOK, false
	}
	status, written := e.status()
	if status == 0 {
		status = http.StatusOK
	}
	return status, written
}

// Fail records err as the request's failure. Hosts dispatch it through
// Hooks.CallError once the handler returns. The first error wins.
func (e *RequestEvent) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Err returns the recorded failure.
func (e *RequestEvent) Err() error {
	return e.err
}
