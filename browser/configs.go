package browser

import "context"

// Logger is the logging contract used by the handlers.
type Logger interface {
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Config is the browser SDK configuration.
type Config struct {
	DSN         string
	Release     string
	Environment string
	Debug       bool

	Tracing TracingConfig
	Replay  ReplayConfig

	// IgnoreStatusCodes applies to reports with source "handler".
	IgnoreStatusCodes []int
}

// TracingConfig configures browser tracing.
type TracingConfig struct {
	Enable                  bool
	TracesSampleRate        float64
	TracePropagationTargets []string
}

// ReplayConfig configures session replay.
type ReplayConfig struct {
	Enable            bool
	SessionSampleRate float64
	OnErrorSampleRate float64
}

// maxReportBytes bounds an error report body.
const maxReportBytes = 64 << 10
