package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/sentry-lab/logger"
)

// FXModule provides *TracerClient and Tracer from a tracer.Config and shuts
// the provider down when the app stops.
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "storefront"} }),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers an OnStop hook that shuts the tracer
// down, flushing pending spans.
func RegisterTracerLifecycle(lc fx.Lifecycle, client *TracerClient, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if client.provider == nil {
				log.Info("tracer is nil, skipping shutdown", nil)
				return nil
			}
			log.Info("shutting down tracer", nil)
			return client.Shutdown(ctx)
		},
	})
}
