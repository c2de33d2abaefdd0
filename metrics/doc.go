// Package metrics exposes Prometheus metrics for the monitoring
// integration.
//
// # Architecture
//
// Metrics owns two registries, each optionally served on its own listener:
//
//   - System endpoint (default :9090): Go runtime, process and build info
//     collectors.
//   - Application endpoint (default :9091): series created through
//     MetricsCollector, including those recorded by OperationObserver.
//
// Every series carries a constant "service" label taken from
// Config.ServiceName.
//
// # Operation metrics
//
// OperationObserver implements observability.Observer. Plug it into the
// request tracer, the browser intake and the shutdown flush to see how the
// monitoring backend is being used:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "storefront"})
//	obs := metrics.NewOperationObserver(m)
//	tracer := reqtrace.NewTracer(client, cfg).WithObserver(obs)
//
// Resulting series (namespace "monitoring" by default):
//
//	monitoring_operations_total{component="reqtrace",operation="report",outcome="error"}
//	monitoring_operation_duration_seconds_bucket{component="reqtrace",operation="span",le="0.1"}
//	monitoring_span_status_total{status_class="5xx"}
//	monitoring_flush_incomplete
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{ServiceName: "storefront"}
//		}),
//	)
//
// The module also provides observability.Observer, which bootstrap picks up
// when present.
//
// # Thread Safety
//
// All metric operations are safe for concurrent use.
package metrics
