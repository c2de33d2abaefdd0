package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/sentry-lab/logger"
	"github.com/aalemi-dev/sentry-lab/observability"
)

// FXModule provides *Metrics, MetricsCollector and an
// observability.Observer backed by OperationObserver, and runs both metrics
// servers for the lifetime of the app.
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config { return metrics.Config{ServiceName: "storefront"} }),
//	)
//
// A metrics.Config and a *logger.LoggerClient must be available.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		fx.Annotate(
			func(c MetricsCollector) observability.Observer { return NewOperationObserver(c) },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts both servers in the background on start
// and shuts them down on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	servers := []struct {
		name string
		srv  *http.Server
	}{
		{"system", m.SystemServer},
		{"application", m.ApplicationServer},
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, s := range servers {
				if s.srv == nil {
					continue
				}
				go func(name string, srv *http.Server) {
					log.Info("starting metrics server", nil, map[string]interface{}{
						"server":  name,
						"address": srv.Addr,
					})
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("metrics server failed", err, map[string]interface{}{"server": name})
					}
				}(s.name, s.srv)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, s := range servers {
				if s.srv == nil {
					continue
				}
				log.Info("shutting down metrics server", nil, map[string]interface{}{"server": s.name})
				if err := s.srv.Shutdown(ctx); err != nil {
					log.Error("error shutting down metrics server", err, map[string]interface{}{"server": s.name})
				}
			}
			return nil
		},
	})
}
