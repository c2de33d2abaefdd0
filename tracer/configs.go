package tracer

// Config defines the configuration for the OpenTelemetry backend.
type Config struct {
	// ServiceName identifies the service on every span.
	ServiceName string `yaml:"service_name" envconfig:"OTEL_SERVICE_NAME"`

	// AppEnv is the deployment environment. It is set as the
	// "deployment.environment" and "environment" resource attributes.
	AppEnv string `yaml:"app_env" envconfig:"OTEL_APP_ENV"`

	// Release is recorded as the service version when set.
	Release string `yaml:"release" envconfig:"OTEL_RELEASE"`

	// EnableExport configures an OTLP/HTTP exporter. When false spans are
	// still created and propagated but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"OTEL_ENABLE_EXPORT"`

	// Endpoint overrides the OTLP/HTTP endpoint URL. Empty means the
	// exporter's own default, which honours OTEL_EXPORTER_OTLP_* variables.
	Endpoint string `yaml:"endpoint" envconfig:"OTEL_EXPORTER_ENDPOINT"`

	// SampleRate is the ratio of root traces sampled. Sampled parents are
	// always followed.
	SampleRate float64 `yaml:"sample_rate" envconfig:"OTEL_SAMPLE_RATE"`
}
