package httpadapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/httperror"
)

// recorded is what the hooks saw for one request.
type recorded struct {
	requests  int
	errs      []error
	responses []int
	order     []string
}

func newRecordingHooks() (*hooks.Hooks, *recorded) {
	rec := &recorded{}
	h := hooks.New(nil)
	h.OnRequest(func(ev *hooks.RequestEvent) {
		rec.requests++
		rec.order = append(rec.order, "request")
	})
	h.OnError(func(ev *hooks.RequestEvent, err error) {
		rec.errs = append(rec.errs, err)
		rec.order = append(rec.order, "error")
	})
	h.OnAfterResponse(func(ev *hooks.RequestEvent) {
		rec.responses = append(rec.responses, ev.ResponseStatus())
		rec.order = append(rec.order, "afterResponse")
	})
	return h, rec
}

func serve(handler http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestMiddleware_CleanResponse(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()

	w := serve(Middleware(h)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})), "/api/users")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"request", "afterResponse"}, rec.order)
	assert.Equal(t, []int{http.StatusOK}, rec.responses)
	assert.Empty(t, rec.errs)
}

func TestMiddleware_CapturesExplicitStatus(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()

	serve(Middleware(h)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusEarlyHints)
		w.WriteHeader(http.StatusCreated)
	})), "/api/users")

	assert.Equal(t, []int{http.StatusCreated}, rec.responses)
}

func TestMiddleware_DownstreamSeesEvent(t *testing.T) {
	t.Parallel()
	h := hooks.New(nil)
	type key struct{}
	h.OnRequest(func(ev *hooks.RequestEvent) { ev.WithValue(key{}, "from-hook") })

	var got interface{}
	var found bool
	serve(Middleware(h)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(key{})
		_, found = hooks.EventFromContext(r.Context())
	})), "/")

	assert.Equal(t, "from-hook", got)
	assert.True(t, found)
}

func TestMiddleware_PanicBecomes500(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()

	var w *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		w = serve(Middleware(h)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil map")
		})), "/api/users")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, rec.errs, 1)
	assert.ErrorIs(t, rec.errs[0], ErrPanic)
	assert.Contains(t, rec.errs[0].Error(), "nil map")
	assert.Equal(t, []string{"request", "error", "afterResponse"}, rec.order)
	assert.Equal(t, []int{http.StatusInternalServerError}, rec.responses)
}

func TestMiddleware_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(Middleware(h)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})), "/api/stream")
	})
	assert.Empty(t, rec.errs)
	assert.Len(t, rec.responses, 1)
}

func TestMiddleware_PreservesFlusher(t *testing.T) {
	t.Parallel()
	h, _ := newRecordingHooks()

	var flusher bool
	serve(Middleware(h)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, flusher = w.(http.Flusher)
	})), "/")

	assert.True(t, flusher)
}

func TestHandle_HTTPError(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()
	notFound := httperror.New(http.StatusNotFound, "user not found")

	w := serve(Middleware(h)(Handle(func(w http.ResponseWriter, r *http.Request) error {
		return notFound
	})), "/api/users/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
	require.Len(t, rec.errs, 1)
	assert.Same(t, notFound, rec.errs[0])
	assert.Equal(t, []int{http.StatusNotFound}, rec.responses)
}

func TestHandle_OpaqueError(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()

	w := serve(Middleware(h)(Handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("db down")
	})), "/api/users")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
	assert.Len(t, rec.errs, 1)
}

func TestHandle_ErrorAfterWriteKeepsStatus(t *testing.T) {
	t.Parallel()
	h, rec := newRecordingHooks()

	w := serve(Middleware(h)(Handle(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return errors.New("late failure")
	})), "/api/jobs")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Len(t, rec.errs, 1)
	assert.Equal(t, []int{http.StatusAccepted}, rec.responses)
}

func TestHandle_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	w := serve(Handle(func(w http.ResponseWriter, r *http.Request) error {
		return httperror.New(http.StatusTeapot, "")
	}), "/")

	assert.Equal(t, http.StatusTeapot, w.Code)
}
