package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/sentry-lab/config"
	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/logger"
	"github.com/aalemi-dev/sentry-lab/monitor"
	"github.com/aalemi-dev/sentry-lab/observability"
)

// FXModule provides *Integration, its *hooks.Hooks and monitor.Client, and
// shuts the integration down when the app stops. It requires
// *config.Options and *logger.LoggerClient; an observability.Observer is
// used when one is provided (metrics.FXModule does).
var FXModule = fx.Module("bootstrap",
	fx.Provide(
		New,
		func(i *Integration) *hooks.Hooks { return i.Hooks() },
		func(i *Integration) monitor.Client { return i.Client() },
	),
	fx.Invoke(RegisterIntegrationLifecycle),
)

// Params are the FXModule dependencies.
type Params struct {
	fx.In

	Options  *config.Options
	Logger   *logger.LoggerClient
	Observer observability.Observer `optional:"true"`
}

// New is the fx constructor for Setup.
func New(p Params) (*Integration, error) {
	return Setup(p.Options, p.Logger, p.Observer)
}

// RegisterIntegrationLifecycle flushes the backend on stop.
func RegisterIntegrationLifecycle(lc fx.Lifecycle, i *Integration) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return i.Shutdown(ctx)
		},
	})
}
