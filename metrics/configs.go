package metrics

// Default addresses for the metrics servers.
const (
	DefaultSystemMetricsAddress      = ":9090"
	DefaultApplicationMetricsAddress = ":9091"
)

// Config configures the Prometheus metrics servers.
//
// Two endpoints are served. The system endpoint exposes Go runtime, process
// and build info collectors. The application endpoint exposes the metrics
// recorded by OperationObserver and anything created through
// MetricsCollector.
type Config struct {
	// SystemMetricsAddress is the listen address of the system endpoint.
	// nil selects DefaultSystemMetricsAddress; a pointer to "" disables it.
	SystemMetricsAddress *string `yaml:"system_metrics_address" envconfig:"METRICS_SYSTEM_ADDRESS"`

	// ApplicationMetricsAddress is the listen address of the application
	// endpoint. nil selects DefaultApplicationMetricsAddress; a pointer to ""
	// disables the server while metrics are still collected in-process.
	ApplicationMetricsAddress *string `yaml:"application_metrics_address" envconfig:"METRICS_APPLICATION_ADDRESS"`

	// ServiceName is attached to every series as the "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// Namespace prefixes the operation metrics. Defaults to "monitoring".
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`
}

// Ptr returns a pointer to s.
//
//	cfg := metrics.Config{SystemMetricsAddress: metrics.Ptr("")} // disabled
func Ptr(s string) *string {
	return &s
}
