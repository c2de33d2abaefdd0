package config

import "errors"

// Validation failures. Each one leaves the integration disabled.
var (
	ErrDisabled         = errors.New("monitoring is disabled by configuration")
	ErrUnknownBackend   = errors.New("unknown monitoring backend")
	ErrMissingDSN       = errors.New("sentry DSN (dsn) is not set")
	ErrMissingAuthToken = errors.New("SENTRY_AUTH_TOKEN is not set")
	ErrMissingOrg       = errors.New("sentry organization (source_map.org) is not set")
	ErrMissingProject   = errors.New("sentry project (source_map.project) is not set")
)
