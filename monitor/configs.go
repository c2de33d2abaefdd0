package monitor

import (
	"github.com/getsentry/sentry-go"
)

// Environments recognised by the default sampling policy.
const (
	EnvProduction  = "production"
	EnvStaging     = "staging"
	EnvDevelopment = "development"
)

// Config configures NewSentryClient.
type Config struct {
	// DSN is the project's data source name. An empty DSN yields a client
	// that accepts and discards everything.
	DSN string

	// Release identifies the deployed version, for example "api@1.4.0".
	Release string

	// Environment overrides the environment derived from Release.
	Environment string

	// ServerName defaults to the hostname.
	ServerName string

	// Debug enables the SDK's own debug output.
	Debug bool

	// SampleRate is the error event sample rate; 0 means 1.0.
	SampleRate float64

	// TracesSampleRate is the transaction sample rate. Nil selects the
	// per-environment default (see DefaultTracesSampleRate).
	TracesSampleRate *float64

	// AutoDiscoverIntegrations keeps the SDK's discovery integrations
	// (module listing, source context). When false they are removed.
	AutoDiscoverIntegrations bool

	// BeforeSend and BeforeSendTransaction are passed through to the SDK.
	BeforeSend            func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event
	BeforeSendTransaction func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 {
	return &v
}
