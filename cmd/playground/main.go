// Command playground serves a small API instrumented by the monitoring
// integration. Configuration comes from the YAML file named by
// SENTRY_CONFIG (optional) and SENTRY_* environment variables.
//
//	SENTRY_DSN=https://key@o1.ingest.sentry.io/2 go run ./cmd/playground
//	curl localhost:8080/api/users
//	curl localhost:8080/api/users/404
//	curl localhost:8080/_monitoring/config
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"

	"github.com/aalemi-dev/sentry-lab/bootstrap"
	"github.com/aalemi-dev/sentry-lab/config"
	"github.com/aalemi-dev/sentry-lab/httpadapter"
	"github.com/aalemi-dev/sentry-lab/httperror"
	"github.com/aalemi-dev/sentry-lab/logger"
	"github.com/aalemi-dev/sentry-lab/metrics"
)

type serverConfig struct {
	Address string `envconfig:"PLAYGROUND_ADDRESS" default:":8080"`
}

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var users = []user{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Grace"}}

func main() {
	fx.New(
		logger.FXModule,
		metrics.FXModule,
		bootstrap.FXModule,
		fx.Provide(
			loadLoggerConfig,
			loadMetricsConfig,
			loadServerConfig,
			func() (*config.Options, error) { return config.Load(os.Getenv("SENTRY_CONFIG")) },
			newServer,
		),
		fx.Invoke(registerServerLifecycle),
	).Run()
}

func loadLoggerConfig() (logger.Config, error) {
	cfg := logger.Config{Level: logger.Info, ServiceName: "playground", EnableTracing: true}
	return cfg, envconfig.Process("", &cfg)
}

func loadMetricsConfig() (metrics.Config, error) {
	cfg := metrics.Config{ServiceName: "playground"}
	return cfg, envconfig.Process("", &cfg)
}

func loadServerConfig() (serverConfig, error) {
	var cfg serverConfig
	return cfg, envconfig.Process("", &cfg)
}

func newServer(cfg serverConfig, integration *bootstrap.Integration) *http.Server {
	mux := http.NewServeMux()
	integration.Mount(mux)

	mux.Handle("GET /api/users", httpadapter.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return writeJSON(w, users)
	}))
	mux.Handle("GET /api/users/{id}", httpadapter.Handle(func(w http.ResponseWriter, r *http.Request) error {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			return httperror.Wrap(http.StatusBadRequest, err)
		}
		for _, u := range users {
			if u.ID == id {
				return writeJSON(w, u)
			}
		}
		return httperror.New(http.StatusNotFound, "user not found")
	}))
	mux.Handle("GET /api/fail", httpadapter.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("simulated failure")
	}))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:    cfg.Address,
		Handler: integration.HTTPMiddleware()(mux),
	}
}

func registerServerLifecycle(lc fx.Lifecycle, srv *http.Server, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("playground listening", nil, map[string]interface{}{"address": ln.Addr().String()})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("playground server failed", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
