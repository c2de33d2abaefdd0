package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

// discoveryIntegrations are dropped when AutoDiscoverIntegrations is false.
var discoveryIntegrations = map[string]bool{
	"Modules":          true,
	"ContextifyFrames": true,
}

// SentryClient implements Client on top of sentry-go.
type SentryClient struct {
	client *sentry.Client
	hub    *sentry.Hub

	environment      string
	tracesSampleRate float64
}

// NewSentryClient builds the SDK client and its root hub.
func NewSentryClient(cfg Config) (*SentryClient, error) {
	environment := ResolveEnvironment(cfg.Environment, cfg.Release)
	rate := DefaultTracesSampleRate(environment)
	if cfg.TracesSampleRate != nil {
		rate = *cfg.TracesSampleRate
	}

	autoDiscover := cfg.AutoDiscoverIntegrations
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:                   cfg.DSN,
		Debug:                 cfg.Debug,
		Release:               cfg.Release,
		Environment:           environment,
		ServerName:            cfg.ServerName,
		SampleRate:            cfg.SampleRate,
		EnableTracing:         rate > 0,
		TracesSampleRate:      rate,
		AttachStacktrace:      true,
		BeforeSend:            cfg.BeforeSend,
		BeforeSendTransaction: cfg.BeforeSendTransaction,
		Integrations: func(integrations []sentry.Integration) []sentry.Integration {
			if autoDiscover {
				return integrations
			}
			kept := integrations[:0]
			for _, i := range integrations {
				if !discoveryIntegrations[i.Name()] {
					kept = append(kept, i)
				}
			}
			return kept
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return &SentryClient{
		client:           client,
		hub:              sentry.NewHub(client, sentry.NewScope()),
		environment:      environment,
		tracesSampleRate: rate,
	}, nil
}

// Environment returns the resolved environment.
func (c *SentryClient) Environment() string {
	return c.environment
}

// TracesSampleRate returns the effective transaction sample rate.
func (c *SentryClient) TracesSampleRate() float64 {
	return c.tracesSampleRate
}

// Hub returns the root hub. Callers must Clone it before mutating its scope.
func (c *SentryClient) Hub() *sentry.Hub {
	return c.hub
}

// StartSpan starts a transaction on a clone of the root hub. The returned
// context carries both the hub and the transaction.
func (c *SentryClient) StartSpan(ctx context.Context, name string, opts SpanOptions) (context.Context, Span) {
	hub := c.hub.Clone()
	scope := hub.Scope()
	if opts.Scope.IPAddress != "" {
		scope.SetUser(sentry.User{IPAddress: opts.Scope.IPAddress})
	}
	for k, v := range opts.Scope.Tags {
		scope.SetTag(k, v)
	}
	ctx = sentry.SetHubOnContext(ctx, hub)

	op := opts.Op
	if op == "" {
		op = "http.server"
	}
	spanOpts := []sentry.SpanOption{
		sentry.WithOpName(op),
		sentry.WithTransactionSource(sentry.SourceURL),
	}
	if opts.Request != nil {
		spanOpts = append(spanOpts, sentry.ContinueFromRequest(opts.Request))
	}

	tx := sentry.StartTransaction(ctx, name, spanOpts...)
	for k, v := range opts.Scope.Tags {
		tx.SetTag(k, v)
	}
	s := &sentrySpan{span: tx}
	s.SetAttributes(opts.Attributes)

	return tx.Context(), s
}

// ReportError captures err on the hub carried by ctx, falling back to a
// clone of the root hub.
func (c *SentryClient) ReportError(ctx context.Context, err error, extra map[string]interface{}) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = c.hub.Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if len(extra) > 0 {
			scope.SetContext("details", sentry.Context(extra))
		}
		hub.CaptureException(err)
	})
}

// Flush waits for queued events.
func (c *SentryClient) Flush(timeout time.Duration) bool {
	return c.client.Flush(timeout)
}

type sentrySpan struct {
	span *sentry.Span
	once sync.Once
}

func (s *sentrySpan) SetHTTPStatus(code int) {
	s.span.Status = sentry.HTTPtoSpanStatus(code)
	s.span.SetData("http.response.status_code", code)
}

func (s *sentrySpan) SetAttributes(attrs map[string]interface{}) {
	for k, v := range attrs {
		s.span.SetData(k, v)
	}
}

func (s *sentrySpan) End() {
	s.once.Do(s.span.Finish)
}

func (s *sentrySpan) TraceID() string {
	return s.span.TraceID.String()
}
