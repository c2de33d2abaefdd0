// Package tracer is the OpenTelemetry monitoring backend.
//
// TracerClient implements monitor.Client, so the request tracer and the
// error reporting paths work unchanged when spans go to an OTLP collector
// instead of Sentry.
//
// # Behaviour
//
//   - Sampling is parent based: a sampled caller is always followed and root
//     traces are sampled at Config.SampleRate.
//   - StartSpan continues W3C traceparent/baggage headers found on
//     SpanOptions.Request and creates a server-kind span.
//   - SetHTTPStatus sets http.response.status_code and marks the span
//     failed for 5xx.
//   - ReportError records on the active span, or on a dedicated "error"
//     span when the context carries none.
//   - Flush is ForceFlush bounded by the timeout.
//
// The provider is owned by the client and never installed as the
// OpenTelemetry global.
//
// # Usage
//
//	client, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "storefront",
//		AppEnv:       "staging",
//		EnableExport: true,
//		SampleRate:   0.1,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	rt := reqtrace.NewTracer(client, reqtrace.Config{PathPrefixes: []string{"/api/"}})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "storefront"} }),
//		fx.Invoke(func(t tracer.Tracer) { /* ... */ }),
//	)
//
// # Thread Safety
//
// All methods on TracerClient and its spans are safe for concurrent use.
package tracer
