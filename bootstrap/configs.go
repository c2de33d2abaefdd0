package bootstrap

import (
	"time"

	"github.com/aalemi-dev/sentry-lab/monitor"
)

const (
	// FlushTimeout bounds the shutdown flush.
	FlushTimeout = 2 * time.Second

	// BrowserPrefix is where Mount registers the browser endpoints.
	BrowserPrefix = "/_monitoring"
)

const component = "bootstrap"

// Option customises Setup.
type Option func(*settings)

type settings struct {
	client monitor.Client
}

// WithClient makes Setup use c instead of building a backend client. The
// caller keeps ownership of c.
func WithClient(c monitor.Client) Option {
	return func(s *settings) {
		s.client = c
	}
}
