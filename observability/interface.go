package observability

import "time"

// Observer receives a notification for every interaction with the monitoring
// backend. Implementations must not block; they run on the request path.
type Observer interface {
	// ObserveOperation is called after the interaction completed.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one interaction with the monitoring backend.
type OperationContext struct {
	// Component is the package that performed the operation
	// ("reqtrace", "browser", "bootstrap").
	Component string

	// Operation is what was done ("span", "report", "ignore", "flush").
	Operation string

	// Resource is the primary subject, usually the request path.
	Resource string

	// SubResource adds detail, for example the HTTP method or report source.
	SubResource string

	// Duration is the wall time of the operation. For spans it is the
	// request duration.
	Duration time.Duration

	// Error is set when the backend interaction itself failed, or, for
	// report/ignore operations, holds the error that was classified.
	Error error

	// Metadata carries extra values such as the final HTTP status.
	Metadata map[string]interface{}
}
