package reqtrace

import (
	"context"
	"strings"
)

// Logger is the logging contract used by the tracer.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Config configures a Tracer.
type Config struct {
	// PathPrefixes selects the requests that receive a span.
	PathPrefixes []string

	// IgnoreStatusCodes lists HTTP error statuses that are not reported.
	IgnoreStatusCodes []int

	// Op is the span operation. Defaults to "http.server".
	Op string
}

// PathFilter is an ordered set of path prefixes.
type PathFilter []string

// Match reports whether path starts with one of the prefixes. An empty
// filter matches nothing.
func (f PathFilter) Match(path string) bool {
	for _, prefix := range f {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
