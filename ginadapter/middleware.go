package ginadapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/httperror"
)

// ErrPanic wraps values recovered from a panicking handler.
var ErrPanic = errors.New("handler panicked")

// Middleware returns gin middleware dispatching h.
func Middleware(h *hooks.Hooks) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev := hooks.NewRequestEvent(c.Request, func() (int, bool) {
			return c.Writer.Status(), c.Writer.Written()
		})
		h.CallRequest(ev)
		c.Request = ev.Request()

		abort := run(c, ev)

		if err := lastError(c); err != nil {
			ev.Fail(err)
		}
		if err := ev.Err(); err != nil {
			if !c.Writer.Written() {
				c.AbortWithStatus(httperror.StatusOr(err, http.StatusInternalServerError))
			}
			h.CallError(ev, err)
		}
		h.CallAfterResponse(ev)

		if abort {
			panic(http.ErrAbortHandler)
		}
	}
}

// run calls the rest of the chain, recording a panic on ev. It reports
// whether the panic was http.ErrAbortHandler, which must be re-raised.
func run(c *gin.Context, ev *hooks.RequestEvent) (abort bool) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if p == http.ErrAbortHandler {
			abort = true
			return
		}
		ev.Fail(fmt.Errorf("%w: %v", ErrPanic, p))
		if !c.Writer.Written() {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}()
	c.Next()
	return false
}

func lastError(c *gin.Context) error {
	last := c.Errors.Last()
	if last == nil {
		return nil
	}
	return last.Err
}
