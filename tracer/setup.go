package tracer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/sentry-lab/monitor"
)

const instrumentationName = "github.com/aalemi-dev/sentry-lab/tracer"

// TracerClient implements monitor.Client over an OpenTelemetry
// TracerProvider it owns. Nothing is registered globally; two clients in the
// same process do not interfere.
//
// TracerClient is safe for concurrent use.
type TracerClient struct {
	provider   *trace.TracerProvider
	tracer     oteltrace.Tracer
	propagator propagation.TextMapPropagator
}

// NewClient creates a TracerClient from cfg. When export is enabled an
// OTLP/HTTP exporter is attached with a batching span processor.
//
// Example:
//
//	client, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "storefront",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	    SampleRate:   0.2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Shutdown(context.Background())
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config, extra ...trace.TracerProviderOption) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var httpOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			httpOpts = append(httpOpts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(httpOpts...))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	}
	if cfg.Release != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.Release))
	}

	options = append(options,
		trace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRate))),
	)
	options = append(options, extra...)

	tp := trace.NewTracerProvider(options...)

	return &TracerClient{
		provider:   tp,
		tracer:     tp.Tracer(instrumentationName),
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	}, nil
}

// StartSpan starts a server span. When opts.Request is set, W3C trace
// context headers on it are continued.
func (t *TracerClient) StartSpan(ctx context.Context, name string, opts monitor.SpanOptions) (context.Context, monitor.Span) {
	if opts.Request != nil {
		ctx = t.propagator.Extract(ctx, propagation.HeaderCarrier(opts.Request.Header))
	}

	attrs := toAttributes(opts.Attributes)
	if opts.Op != "" {
		attrs = append(attrs, attribute.String("span.op", opts.Op))
	}
	if opts.Scope.IPAddress != "" {
		attrs = append(attrs, attribute.String("client.address", opts.Scope.IPAddress))
	}
	for k, v := range opts.Scope.Tags {
		attrs = append(attrs, attribute.String("tag."+k, v))
	}

	ctx, span := t.tracer.Start(ctx, name,
		oteltrace.WithSpanKind(oteltrace.SpanKindServer),
		oteltrace.WithAttributes(attrs...),
	)
	return ctx, &spanImpl{span: span}
}

// ReportError records err on the span active in ctx. Without one, a short
// "error" span is created to carry it.
func (t *TracerClient) ReportError(ctx context.Context, err error, extra map[string]interface{}) {
	span := oteltrace.SpanFromContext(ctx)
	if !span.IsRecording() {
		_, span = t.tracer.Start(ctx, "error")
		defer span.End()
	}
	span.RecordError(err, oteltrace.WithAttributes(toAttributes(extra)...))
	span.SetStatus(codes.Error, err.Error())
}

// Flush forces export of finished spans, waiting at most timeout.
func (t *TracerClient) Flush(timeout time.Duration) bool {
	if t.provider == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return t.provider.ForceFlush(ctx) == nil
}

// Shutdown flushes and stops the provider.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
