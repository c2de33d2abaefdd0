// Package config holds the monitoring integration options and their
// loading and validation rules.
//
// Options are resolved in three layers: Default, then an optional YAML
// file, then environment variables. A later layer only overrides the keys it
// sets.
//
//	opts, err := config.Load("sentry.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := opts.Validate(); err != nil {
//		// the integration stays disabled; err says why
//	}
//
// Environment keys:
//
//	SENTRY_DSN, SENTRY_ENABLE, SENTRY_RELEASE, SENTRY_ENVIRONMENT,
//	SENTRY_BACKEND, SENTRY_IGNORE_STATUS_CODES, SENTRY_AUTH_TOKEN,
//	SENTRY_CLIENT_*, SENTRY_SERVER_*, SENTRY_SOURCE_MAP_*, SENTRY_OTEL_*
package config
