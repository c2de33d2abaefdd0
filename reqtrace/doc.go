// Package reqtrace attaches one monitoring span to each request whose path
// matches a configured prefix, and reports request errors.
//
// The Tracer subscribes to three lifecycle events (see package hooks):
//
//   - request: if the path matches the PathFilter, start a span named
//     "<METHOD> <path>" in a scope carrying the caller IP, and store a
//     TraceContext on the request context.
//   - error: report the error unless it is an HTTP error whose status is in
//     the ignore-list; then finalize the span with the error's status (or the
//     response status if the error carries none).
//   - afterResponse: finalize the span with the response status.
//
// Finalization is one-shot: whichever of error/afterResponse runs first sets
// the status and ends the span; the other is a no-op. Requests outside the
// filter never reach the backend.
//
// Every backend call is guarded: a panicking or failing monitoring client is
// logged and otherwise ignored.
package reqtrace
