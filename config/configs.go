package config

// Supported monitoring backends.
const (
	BackendSentry = "sentry"
	BackendOTel   = "otel"
)

// Options configures the monitoring integration.
type Options struct {
	// DSN is the Sentry project DSN. Required for the sentry backend.
	DSN string `yaml:"dsn" envconfig:"SENTRY_DSN"`

	// Enable switches the whole integration.
	Enable bool `yaml:"enable" envconfig:"SENTRY_ENABLE"`

	// Release identifies the deployed build. A semver release without a
	// prerelease suffix implies the production environment.
	Release string `yaml:"release" envconfig:"SENTRY_RELEASE"`

	// Environment overrides the environment derived from Release.
	Environment string `yaml:"environment" envconfig:"SENTRY_ENVIRONMENT"`

	// Backend selects the server side client: "sentry" or "otel".
	Backend string `yaml:"backend" envconfig:"SENTRY_BACKEND"`

	// IgnoreStatusCodes lists HTTP error statuses that are never reported,
	// on the server and from the browser error handler.
	IgnoreStatusCodes []int `yaml:"ignore_status_codes" envconfig:"SENTRY_IGNORE_STATUS_CODES"`

	Client    ClientOptions    `yaml:"client"`
	Server    ServerOptions    `yaml:"server"`
	SourceMap SourceMapOptions `yaml:"source_map"`
	OTel      OTelOptions      `yaml:"otel"`

	// AuthToken authorises source map upload. It is read from the
	// environment only.
	AuthToken string `yaml:"-" envconfig:"SENTRY_AUTH_TOKEN"`
}

// ClientOptions configures the browser SDK served by package browser.
type ClientOptions struct {
	Enable bool `yaml:"enable" envconfig:"SENTRY_CLIENT_ENABLE"`
	Debug  bool `yaml:"debug" envconfig:"SENTRY_CLIENT_DEBUG"`

	BrowserTracing BrowserTracingOptions `yaml:"browser_tracing"`
	Replay         ReplayOptions         `yaml:"replay"`
}

// BrowserTracingOptions configures page load and navigation tracing.
type BrowserTracingOptions struct {
	Enable           bool    `yaml:"enable" envconfig:"SENTRY_CLIENT_TRACING_ENABLE"`
	TracesSampleRate float64 `yaml:"traces_sample_rate" envconfig:"SENTRY_CLIENT_TRACES_SAMPLE_RATE"`

	// TracePropagationTargets are URL patterns (plain strings or regular
	// expressions) that receive trace headers from the browser.
	TracePropagationTargets []string `yaml:"trace_propagation_targets" envconfig:"SENTRY_CLIENT_TRACE_PROPAGATION_TARGETS"`
}

// ReplayOptions configures session replay.
type ReplayOptions struct {
	Enable            bool    `yaml:"enable" envconfig:"SENTRY_CLIENT_REPLAY_ENABLE"`
	SessionSampleRate float64 `yaml:"session_sample_rate" envconfig:"SENTRY_CLIENT_REPLAY_SESSION_SAMPLE_RATE"`
	OnErrorSampleRate float64 `yaml:"on_error_sample_rate" envconfig:"SENTRY_CLIENT_REPLAY_ON_ERROR_SAMPLE_RATE"`
}

// ServerOptions configures the server side integration.
type ServerOptions struct {
	Enable bool `yaml:"enable" envconfig:"SENTRY_SERVER_ENABLE"`
	Debug  bool `yaml:"debug" envconfig:"SENTRY_SERVER_DEBUG"`

	// TracesSampleRate overrides the per-environment default when set.
	TracesSampleRate *float64 `yaml:"traces_sample_rate" envconfig:"SENTRY_SERVER_TRACES_SAMPLE_RATE"`

	ServerName string `yaml:"server_name" envconfig:"SENTRY_SERVER_NAME"`

	// AutoDiscoverIntegrations keeps the SDK's environment probing
	// integrations (module list, source context).
	AutoDiscoverIntegrations bool `yaml:"auto_discover_integrations" envconfig:"SENTRY_SERVER_AUTO_DISCOVER_INTEGRATIONS"`

	CustomInstrumentation CustomInstrumentationOptions `yaml:"custom_instrumentation"`
}

// CustomInstrumentationOptions configures the per-request tracer.
type CustomInstrumentationOptions struct {
	Enable bool `yaml:"enable" envconfig:"SENTRY_SERVER_CUSTOM_INSTRUMENTATION_ENABLE"`

	// TraceTargetPaths are the path prefixes that get a request span.
	TraceTargetPaths []string `yaml:"trace_target_paths" envconfig:"SENTRY_SERVER_TRACE_TARGET_PATHS"`
}

// SourceMapOptions identifies where source maps are uploaded. Only the
// settings are validated here; the upload is a build step.
type SourceMapOptions struct {
	Enable  bool   `yaml:"enable" envconfig:"SENTRY_SOURCE_MAP_ENABLE"`
	Org     string `yaml:"org" envconfig:"SENTRY_SOURCE_MAP_ORG"`
	Project string `yaml:"project" envconfig:"SENTRY_SOURCE_MAP_PROJECT"`
}

// OTelOptions configures the otel backend.
type OTelOptions struct {
	ServiceName  string `yaml:"service_name" envconfig:"SENTRY_OTEL_SERVICE_NAME"`
	EnableExport bool   `yaml:"enable_export" envconfig:"SENTRY_OTEL_ENABLE_EXPORT"`
	Endpoint     string `yaml:"endpoint" envconfig:"SENTRY_OTEL_ENDPOINT"`
}

// Default returns the built-in options.
func Default() *Options {
	return &Options{
		Enable:            true,
		Backend:           BackendSentry,
		IgnoreStatusCodes: []int{404, 202},
		Client: ClientOptions{
			Enable: true,
			BrowserTracing: BrowserTracingOptions{
				Enable:                  true,
				TracesSampleRate:        1.0,
				TracePropagationTargets: []string{"localhost", "^/"},
			},
			Replay: ReplayOptions{
				Enable:            true,
				SessionSampleRate: 0.1,
				OnErrorSampleRate: 1.0,
			},
		},
		Server: ServerOptions{
			Enable: true,
		},
	}
}
