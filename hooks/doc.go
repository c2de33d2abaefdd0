// Package hooks is the lifecycle dispatcher between the HTTP host and the
// monitoring integration.
//
// The host (see httpadapter and ginadapter) fires four events:
//
//	request        a request arrived; handlers may decorate its context
//	error          the request failed with an error
//	afterResponse  the response is complete (always fires, also after error)
//	close          the process is shutting down (fires once)
//
// Handlers subscribe with OnRequest, OnError, OnAfterResponse and OnClose and
// run synchronously in registration order. A panicking handler is recovered
// and logged so instrumentation can never break the request it observes.
package hooks
