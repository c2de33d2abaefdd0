// Package httpadapter drives a hooks.Hooks dispatcher from net/http.
//
// Middleware fires the request hook before the handler, the error hook
// when the handler failed or panicked, and the afterResponse hook once the
// handler has returned. The response status is captured with httpsnoop so
// the wrapped writer keeps every optional interface (Flusher, Hijacker,
// ReaderFrom) of the original.
//
//	h := hooks.New(log)
//	reqtrace.NewTracer(client, cfg).Register(h)
//
//	mux := http.NewServeMux()
//	mux.Handle("/api/users", httpadapter.Handle(listUsers))
//	http.ListenAndServe(":8080", httpadapter.Middleware(h)(mux))
//
// Handle adapts handlers that return an error. The error's HTTP status (see
// package httperror) is written when the handler has not responded yet, and
// the error is recorded on the request event for the middleware to dispatch.
package httpadapter
