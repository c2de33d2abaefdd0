package ginadapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/httperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recorded struct {
	errs      []error
	responses []int
}

func newRouter(t *testing.T, register func(r *gin.Engine)) (*gin.Engine, *recorded) {
	t.Helper()
	rec := &recorded{}
	h := hooks.New(nil)
	h.OnError(func(ev *hooks.RequestEvent, err error) {
		rec.errs = append(rec.errs, err)
	})
	h.OnAfterResponse(func(ev *hooks.RequestEvent) {
		rec.responses = append(rec.responses, ev.ResponseStatus())
	})

	r := gin.New()
	r.Use(Middleware(h))
	register(r)
	return r, rec
}

func serve(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestMiddleware_CleanResponse(t *testing.T) {
	t.Parallel()
	r, rec := newRouter(t, func(r *gin.Engine) {
		r.GET("/api/users", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"users": []string{}})
		})
	})

	w := serve(r, "/api/users")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, rec.errs)
	assert.Equal(t, []int{http.StatusOK}, rec.responses)
}

func TestMiddleware_EventOnRequestContext(t *testing.T) {
	t.Parallel()
	var found bool
	r, _ := newRouter(t, func(r *gin.Engine) {
		r.GET("/", func(c *gin.Context) {
			_, found = hooks.EventFromContext(c.Request.Context())
		})
	})

	serve(r, "/")

	assert.True(t, found)
}

func TestMiddleware_AbortWithError(t *testing.T) {
	t.Parallel()
	notFound := httperror.New(http.StatusNotFound, "")
	r, rec := newRouter(t, func(r *gin.Engine) {
		r.GET("/api/users/:id", func(c *gin.Context) {
			_ = c.AbortWithError(http.StatusNotFound, notFound)
		})
	})

	w := serve(r, "/api/users/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, rec.errs, 1)
	assert.Same(t, notFound, rec.errs[0])
	assert.Equal(t, []int{http.StatusNotFound}, rec.responses)
}

func TestMiddleware_UnansweredErrorUsesItsStatus(t *testing.T) {
	t.Parallel()
	r, rec := newRouter(t, func(r *gin.Engine) {
		r.GET("/api/orders", func(c *gin.Context) {
			_ = c.Error(httperror.New(http.StatusServiceUnavailable, ""))
		})
		r.GET("/api/opaque", func(c *gin.Context) {
			_ = c.Error(errors.New("db down"))
		})
	})

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, "/api/orders").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, "/api/opaque").Code)
	assert.Len(t, rec.errs, 2)
	assert.Equal(t, []int{http.StatusServiceUnavailable, http.StatusInternalServerError}, rec.responses)
}

func TestMiddleware_PanicBecomes500(t *testing.T) {
	t.Parallel()
	r, rec := newRouter(t, func(r *gin.Engine) {
		r.GET("/api/users", func(c *gin.Context) {
			panic("nil map")
		})
	})

	var w *httptest.ResponseRecorder
	assert.NotPanics(t, func() { w = serve(r, "/api/users") })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, rec.errs, 1)
	assert.ErrorIs(t, rec.errs[0], ErrPanic)
	assert.Equal(t, []int{http.StatusInternalServerError}, rec.responses)
}
