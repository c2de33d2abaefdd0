package metrics

// MetricsCollector creates application metrics. It hides the Prometheus
// types so observers can be tested against in-memory fakes.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// CreateCounter registers a counter vector on the application registry.
	//
	//   c := m.CreateCounter("reports_total", "Reported errors", []string{"source"})
	//   c.WithLabelValues("handler").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram registers a histogram vector on the application
	// registry. nil buckets select the Prometheus defaults.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge registers a gauge vector on the application registry.
	CreateGauge(name, help string, labels []string) Gauge
}
