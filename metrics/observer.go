package metrics

import (
	"strconv"

	"github.com/aalemi-dev/sentry-lab/observability"
)

// durationBuckets cover sub-millisecond backend calls up to slow requests.
var durationBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OperationObserver records every monitoring operation as Prometheus
// series:
//
//	<ns>_operations_total{component,operation,outcome}
//	<ns>_operation_duration_seconds{component,operation}
//	<ns>_span_status_total{status_class}
//	<ns>_flush_incomplete
type OperationObserver struct {
	operations      Counter
	durations       Histogram
	spanStatuses    Counter
	flushIncomplete Gauge
}

// NewOperationObserver creates the operation metrics on c. The namespace
// comes from c when it is a *Metrics, else "monitoring".
func NewOperationObserver(c MetricsCollector) *OperationObserver {
	ns := "monitoring"
	if m, ok := c.(*Metrics); ok {
		ns = m.Namespace()
	}
	return &OperationObserver{
		operations: c.CreateCounter(ns+"_operations_total",
			"Monitoring backend operations by component, operation and outcome.",
			[]string{"component", "operation", "outcome"}),
		durations: c.CreateHistogram(ns+"_operation_duration_seconds",
			"Duration of monitoring operations; request duration for spans.",
			[]string{"component", "operation"}, durationBuckets),
		spanStatuses: c.CreateCounter(ns+"_span_status_total",
			"Finalized request spans by HTTP status class.",
			[]string{"status_class"}),
		flushIncomplete: c.CreateGauge(ns+"_flush_incomplete",
			"1 when the last shutdown flush timed out before the queue drained.",
			nil),
	}
}

// ObserveOperation implements observability.Observer.
func (o *OperationObserver) ObserveOperation(ctx observability.OperationContext) {
	outcome := "success"
	if ctx.Error != nil {
		outcome = "error"
	}
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, outcome).Inc()
	o.durations.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	switch ctx.Operation {
	case "span":
		if status, ok := ctx.Metadata["status"].(int); ok {
			o.spanStatuses.WithLabelValues(statusClass(status)).Inc()
		}
	case "flush":
		if completed, ok := ctx.Metadata["completed"].(bool); ok {
			v := 0.0
			if !completed {
				v = 1
			}
			o.flushIncomplete.Set(v)
		}
	}
}

// statusClass maps 503 to "5xx". Out-of-range values are "other".
func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "other"
	}
	return strconv.Itoa(status/100) + "xx"
}
