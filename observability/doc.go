// Package observability defines the hook through which the monitoring
// integration reports its own activity.
//
// Every package in this module that talks to the monitoring backend (the
// request tracer, the browser error intake, the shutdown flush) describes each
// backend interaction as an OperationContext and hands it to an optional
// Observer. Applications plug in an Observer to turn those into metrics or
// logs; the metrics package ships one that records prometheus counters and
// histograms.
//
// # Usage
//
// Packages accept an optional Observer and call it after each interaction:
//
//	if t.observer != nil {
//	    t.observer.ObserveOperation(observability.OperationContext{
//	        Component: "reqtrace",
//	        Operation: "span",
//	        Resource:  "/api/users",
//	        Duration:  time.Since(start),
//	        Metadata:  map[string]interface{}{"status": 200},
//	    })
//	}
//
// Wire an implementation through fx:
//
//	fx.Provide(
//	    fx.Annotate(
//	        metrics.NewOperationObserver,
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// # Operations
//
// The operations emitted by this module are:
//
//   - reqtrace/span:   a request span was finalized (Resource = path)
//   - reqtrace/report: an error was sent to the backend
//   - reqtrace/ignore: an error was suppressed by the ignore-list
//   - browser/report:  a frontend error report was forwarded
//   - browser/ignore:  a frontend error report was suppressed
//   - bootstrap/flush: pending events were drained on shutdown
//
// # Thread Safety
//
// Observer implementations must be safe for concurrent use; they are called
// from every in-flight request.
package observability
