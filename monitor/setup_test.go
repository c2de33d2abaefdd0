package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventSink collects events handed to BeforeSend/BeforeSendTransaction and
// drops them so nothing leaves the process.
type eventSink struct {
	mu           sync.Mutex
	errors       []*sentry.Event
	transactions []*sentry.Event
}

func (s *eventSink) config() Config {
	return Config{
		Environment:      EnvDevelopment,
		TracesSampleRate: Float64(1.0),
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.errors = append(s.errors, event)
			return nil
		},
		BeforeSendTransaction: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.transactions = append(s.transactions, event)
			return nil
		},
	}
}

func newTestClient(t *testing.T) (*SentryClient, *eventSink) {
	t.Helper()
	sink := &eventSink{}
	client, err := NewSentryClient(sink.config())
	require.NoError(t, err)
	return client, sink
}

func TestNewSentryClient_InvalidDSN(t *testing.T) {
	t.Parallel()
	client, err := NewSentryClient(Config{DSN: "not a dsn"})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestNewSentryClient_DefaultSampleRateFollowsEnvironment(t *testing.T) {
	t.Parallel()
	client, err := NewSentryClient(Config{Release: "api@2.0.0"})
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, client.Environment())
	assert.InDelta(t, 0.2, client.TracesSampleRate(), 1e-9)
}

func TestReportError_CapturesExceptionWithExtra(t *testing.T) {
	t.Parallel()
	client, sink := newTestClient(t)

	client.ReportError(context.Background(), errors.New("boom"), map[string]interface{}{"component": "UserList"})

	require.Len(t, sink.errors, 1)
	event := sink.errors[0]
	require.NotEmpty(t, event.Exception)
	assert.Equal(t, "boom", event.Exception[len(event.Exception)-1].Value)
	assert.Equal(t, "UserList", event.Contexts["details"]["component"])
}

func TestReportError_NilErrorIsIgnored(t *testing.T) {
	t.Parallel()
	client, sink := newTestClient(t)

	client.ReportError(context.Background(), nil, nil)

	assert.Empty(t, sink.errors)
}

func TestReportError_UsesRequestScope(t *testing.T) {
	t.Parallel()
	client, sink := newTestClient(t)

	ctx, span := client.StartSpan(context.Background(), "GET /api/users", SpanOptions{
		Scope: ScopeData{IPAddress: "1.2.3.4"},
	})
	client.ReportError(ctx, errors.New("db down"), nil)
	span.End()

	require.Len(t, sink.errors, 1)
	assert.Equal(t, "1.2.3.4", sink.errors[0].User.IPAddress)
}

func TestStartSpan_FinishesTransactionOnce(t *testing.T) {
	t.Parallel()
	client, sink := newTestClient(t)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)

	_, span := client.StartSpan(context.Background(), "GET /api/users", SpanOptions{
		Op:         "http.server",
		Attributes: map[string]interface{}{"server.address": "example.com"},
		Scope:      ScopeData{IPAddress: "1.2.3.4", Tags: map[string]string{"request_id": "abc"}},
		Request:    req,
	})
	span.SetHTTPStatus(http.StatusNotFound)
	span.End()
	span.End()

	require.Len(t, sink.transactions, 1)
	tx := sink.transactions[0]
	assert.Equal(t, "GET /api/users", tx.Transaction)
	assert.Equal(t, "1.2.3.4", tx.User.IPAddress)
	assert.Equal(t, sentry.SpanStatusNotFound, span.(*sentrySpan).span.Status)
	assert.NotEmpty(t, span.TraceID())
}

func TestStartSpan_ContinuesIncomingTrace(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("sentry-trace", "d49d9bf66f13450b81f65bc51cf49c03-1cc4b26ab9094ef0-1")

	_, span := client.StartSpan(context.Background(), "GET /api/users", SpanOptions{Request: req})
	defer span.End()

	assert.Equal(t, "d49d9bf66f13450b81f65bc51cf49c03", span.TraceID())
}

func TestFlush_EmptyQueue(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t)
	assert.True(t, client.Flush(100*time.Millisecond))
}

func TestClientFromContext(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t)

	assert.Equal(t, NopClient{}, ClientFromContext(context.Background()))

	ctx := ContextWithClient(context.Background(), client)
	assert.Same(t, client, ClientFromContext(ctx))
}

func TestNopClient(t *testing.T) {
	t.Parallel()
	var c Client = NopClient{}
	ctx, span := c.StartSpan(context.Background(), "x", SpanOptions{})

	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		span.SetHTTPStatus(500)
		span.End()
		c.ReportError(ctx, errors.New("x"), nil)
	})
	assert.True(t, c.Flush(time.Millisecond))
}
