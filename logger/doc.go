// Package logger provides the structured logger used across the module.
//
// LoggerClient wraps a zap.Logger configured for JSON output with ISO8601
// timestamps, the process id and the service name. Every method takes a
// message, an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "api"})
//	log.Info("monitoring enabled", nil, map[string]interface{}{"backend": "sentry"})
//
// The *WithContext variants attach trace_id and span_id when tracing is
// enabled and the context carries a request span, so log lines can be joined
// with the transaction shown in the monitoring backend.
//
// Packages that only need to log accept the narrow interface
//
//	type Logger interface {
//	    InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
//	    WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
//	    ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
//	}
//
// which *LoggerClient satisfies.
package logger
