package browser

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/aalemi-dev/sentry-lab/httperror"
	"github.com/aalemi-dev/sentry-lab/monitor"
	"github.com/aalemi-dev/sentry-lab/observability"
)

const component = "browser"

// Handler serves the browser configuration and error intake endpoints.
type Handler struct {
	client monitor.Client
	public PublicConfig
	ignore httperror.IgnoreList

	logger   Logger
	observer observability.Observer
}

// NewHandler returns a Handler reporting frontend errors to client.
func NewHandler(client monitor.Client, cfg Config) *Handler {
	return &Handler{
		client: client,
		public: publicConfig(cfg),
		ignore: httperror.NewIgnoreList(cfg.IgnoreStatusCodes...),
	}
}

func (h *Handler) WithLogger(l Logger) *Handler {
	h.logger = l
	return h
}

func (h *Handler) WithObserver(o observability.Observer) *Handler {
	h.observer = o
	return h
}

// Mount registers GET <prefix>/config and POST <prefix>/errors on mux.
func (h *Handler) Mount(mux *http.ServeMux, prefix string) {
	mux.Handle("GET "+prefix+"/config", h.ConfigHandler())
	mux.Handle("POST "+prefix+"/errors", h.ErrorIntakeHandler())
}

// ConfigHandler serves PublicConfig.
func (h *Handler) ConfigHandler() http.Handler {
	body, err := json.Marshal(h.public)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(body)
	})
}

// ErrorIntakeHandler accepts ErrorReport bodies.
func (h *Handler) ErrorIntakeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		var report ErrorReport
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReportBytes)).Decode(&report); err != nil {
			http.Error(w, "invalid error report", http.StatusBadRequest)
			return
		}
		if err := report.validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		h.handle(r.Context(), &report)
		w.WriteHeader(http.StatusAccepted)
	})
}

func (h *Handler) handle(ctx context.Context, report *ErrorReport) {
	cerr := &ClientError{Name: report.Name, Message: report.Message, StatusCode: report.StatusCode}
	op := observability.OperationContext{
		Component:   component,
		Resource:    report.URL,
		SubResource: report.Source,
		Error:       cerr,
	}

	if report.Source == SourceHandler && h.ignore.Suppresses(cerr) {
		op.Operation = "ignore"
		observability.Notify(h.observer, op)
		return
	}

	extra := map[string]interface{}{"source": report.Source}
	if report.Context != nil {
		extra["context"] = report.Context
	}
	if report.URL != "" {
		extra["url"] = report.URL
	}
	if report.Stack != "" {
		extra["stack"] = report.Stack
	}

	start := time.Now()
	func() {
		defer func() {
			if p := recover(); p != nil && h.logger != nil {
				h.logger.ErrorWithContext(ctx, "monitoring backend call failed", fmt.Errorf("%v", p), map[string]interface{}{
					"action": "report browser error",
				})
			}
		}()
		h.client.ReportError(ctx, cerr, extra)
	}()

	op.Operation = "report"
	op.Duration = time.Since(start)
	observability.Notify(h.observer, op)
}

func publicConfig(cfg Config) PublicConfig {
	pc := PublicConfig{
		DSN:               cfg.DSN,
		Release:           cfg.Release,
		Environment:       cfg.Environment,
		Debug:             cfg.Debug,
		Integrations:      []string{},
		IgnoreStatusCodes: append([]int{}, cfg.IgnoreStatusCodes...),
	}
	if cfg.Tracing.Enable {
		rate := cfg.Tracing.TracesSampleRate
		pc.Integrations = append(pc.Integrations, "browserTracing")
		pc.TracesSampleRate = &rate
		pc.TracePropagationTargets = cfg.Tracing.TracePropagationTargets
	}
	if cfg.Replay.Enable {
		session, onError := cfg.Replay.SessionSampleRate, cfg.Replay.OnErrorSampleRate
		pc.Integrations = append(pc.Integrations, "replay")
		pc.ReplaysSessionSampleRate = &session
		pc.ReplaysOnErrorSampleRate = &onError
	}
	return pc
}
