// Package bootstrap assembles the monitoring integration from
// config.Options.
//
// Setup validates the options, builds the backend client (Sentry or
// OpenTelemetry), and wires the server plugin and the browser endpoints:
//
//   - server.enable: every request gets the client on its context
//     (monitor.ClientFromContext), errors are reported through the
//     ignore-list, and the backend is flushed on close within two seconds.
//   - server.custom_instrumentation.enable: requests under the configured
//     path prefixes additionally get a span.
//   - client.enable: the browser config and error intake endpoints are
//     mounted by Mount.
//
// Options that fail validation leave the integration disabled. Setup logs
// a warning and returns an Integration whose middleware only passes
// requests through.
//
//	opts, _ := config.Load("sentry.yaml")
//	integration, err := bootstrap.Setup(opts, log, nil)
//	if err != nil {
//		log.Fatal("monitoring setup failed", err)
//	}
//	defer integration.Shutdown(context.Background())
//
//	mux := http.NewServeMux()
//	integration.Mount(mux)
//	http.ListenAndServe(":8080", integration.HTTPMiddleware()(mux))
package bootstrap
