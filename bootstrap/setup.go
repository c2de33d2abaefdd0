package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aalemi-dev/sentry-lab/browser"
	"github.com/aalemi-dev/sentry-lab/config"
	"github.com/aalemi-dev/sentry-lab/ginadapter"
	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/httpadapter"
	"github.com/aalemi-dev/sentry-lab/logger"
	"github.com/aalemi-dev/sentry-lab/monitor"
	"github.com/aalemi-dev/sentry-lab/observability"
	"github.com/aalemi-dev/sentry-lab/reqtrace"
	"github.com/aalemi-dev/sentry-lab/tracer"
)

// Integration is the assembled monitoring integration. It owns the backend
// client it built.
type Integration struct {
	enabled     bool
	environment string

	client  monitor.Client
	hooks   *hooks.Hooks
	tracer  *reqtrace.Tracer
	browser *browser.Handler

	// shutdown releases backend resources after the final flush.
	shutdown func(ctx context.Context) error

	logger   logger.Logger
	observer observability.Observer
}

// Setup builds the integration described by opts. Invalid options disable
// the integration with a warning; only a failure to construct the backend
// client is returned as an error. log and obs may be nil.
func Setup(opts *config.Options, log logger.Logger, obs observability.Observer, options ...Option) (*Integration, error) {
	if opts == nil {
		opts = config.Default()
	}
	if log == nil {
		log = logger.NewNopLoggerClient()
	}
	var s settings
	for _, o := range options {
		o(&s)
	}

	i := &Integration{
		client:   monitor.NopClient{},
		hooks:    hooks.New(log),
		logger:   log,
		observer: obs,
	}

	if err := opts.Validate(); err != nil {
		log.Warn("monitoring disabled", err)
		return i, nil
	}

	i.environment = monitor.ResolveEnvironment(opts.Environment, opts.Release)
	if s.client != nil {
		i.client = s.client
	} else if err := i.buildClient(opts); err != nil {
		return nil, err
	}
	i.enabled = true
	i.hooks.OnClose(i.flush)

	if opts.Server.Enable {
		i.installServerPlugin(opts)
	}
	if opts.Client.Enable {
		i.browser = browser.NewHandler(i.client, browserConfig(opts, i.environment)).
			WithLogger(log).
			WithObserver(obs)
	}

	log.Info("monitoring enabled", nil, map[string]interface{}{
		"backend":                opts.Backend,
		"environment":            i.environment,
		"server":                 opts.Server.Enable,
		"custom_instrumentation": opts.Server.Enable && opts.Server.CustomInstrumentation.Enable,
		"client":                 opts.Client.Enable,
	})
	return i, nil
}

func (i *Integration) buildClient(opts *config.Options) error {
	switch opts.Backend {
	case config.BackendOTel:
		rate := monitor.DefaultTracesSampleRate(i.environment)
		if opts.Server.TracesSampleRate != nil {
			rate = *opts.Server.TracesSampleRate
		}
		tc, err := tracer.NewClient(tracer.Config{
			ServiceName:  opts.OTel.ServiceName,
			AppEnv:       i.environment,
			Release:      opts.Release,
			EnableExport: opts.OTel.EnableExport,
			Endpoint:     opts.OTel.Endpoint,
			SampleRate:   rate,
		})
		if err != nil {
			return fmt.Errorf("failed to create otel client: %w", err)
		}
		i.client = tc
		i.shutdown = tc.Shutdown
	default:
		sc, err := monitor.NewSentryClient(monitor.Config{
			DSN:                      opts.DSN,
			Release:                  opts.Release,
			Environment:              i.environment,
			ServerName:               opts.Server.ServerName,
			Debug:                    opts.Server.Debug,
			TracesSampleRate:         opts.Server.TracesSampleRate,
			AutoDiscoverIntegrations: opts.Server.AutoDiscoverIntegrations,
		})
		if err != nil {
			return fmt.Errorf("failed to create sentry client: %w", err)
		}
		i.client = sc
	}
	return nil
}

// installServerPlugin provides the client on every request context, reports
// errors and traces the configured paths.
func (i *Integration) installServerPlugin(opts *config.Options) {
	i.hooks.OnRequest(func(ev *hooks.RequestEvent) {
		ev.SetContext(monitor.ContextWithClient(ev.Context(), i.client))
	})

	// Without custom instrumentation the filter is empty: errors are still
	// reported but no span is started.
	var prefixes []string
	if opts.Server.CustomInstrumentation.Enable {
		prefixes = opts.Server.CustomInstrumentation.TraceTargetPaths
	}
	i.tracer = reqtrace.NewTracer(i.client, reqtrace.Config{
		PathPrefixes:      prefixes,
		IgnoreStatusCodes: opts.IgnoreStatusCodes,
	}).WithLogger(i.logger).WithObserver(i.observer)
	i.tracer.Register(i.hooks)
}

// Enabled reports whether options passed validation.
func (i *Integration) Enabled() bool {
	return i.enabled
}

// Environment returns the resolved environment, empty when disabled.
func (i *Integration) Environment() string {
	return i.environment
}

// Client returns the backend client, a monitor.NopClient when disabled.
func (i *Integration) Client() monitor.Client {
	return i.client
}

// Hooks returns the lifecycle dispatcher. Applications may subscribe their
// own handlers.
func (i *Integration) Hooks() *hooks.Hooks {
	return i.hooks
}

// HTTPMiddleware returns net/http middleware dispatching the lifecycle
// hooks.
func (i *Integration) HTTPMiddleware() func(http.Handler) http.Handler {
	return httpadapter.Middleware(i.hooks)
}

// GinMiddleware returns gin middleware dispatching the lifecycle hooks.
func (i *Integration) GinMiddleware() gin.HandlerFunc {
	return ginadapter.Middleware(i.hooks)
}

// Mount registers the browser endpoints under BrowserPrefix. It does
// nothing when the browser client is disabled.
func (i *Integration) Mount(mux *http.ServeMux) {
	if i.browser == nil {
		return
	}
	i.browser.Mount(mux, BrowserPrefix)
}

// Shutdown runs the close hooks once. Later calls return the first result.
func (i *Integration) Shutdown(ctx context.Context) error {
	return i.hooks.CallClose(ctx)
}

func browserConfig(opts *config.Options, environment string) browser.Config {
	return browser.Config{
		DSN:         opts.DSN,
		Release:     opts.Release,
		Environment: environment,
		Debug:       opts.Client.Debug,
		Tracing: browser.TracingConfig{
			Enable:                  opts.Client.BrowserTracing.Enable,
			TracesSampleRate:        opts.Client.BrowserTracing.TracesSampleRate,
			TracePropagationTargets: opts.Client.BrowserTracing.TracePropagationTargets,
		},
		Replay: browser.ReplayConfig{
			Enable:            opts.Client.Replay.Enable,
			SessionSampleRate: opts.Client.Replay.SessionSampleRate,
			OnErrorSampleRate: opts.Client.Replay.OnErrorSampleRate,
		},
		IgnoreStatusCodes: opts.IgnoreStatusCodes,
	}
}
