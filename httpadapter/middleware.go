package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"

	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/httperror"
)

// ErrPanic wraps values recovered from a panicking handler.
var ErrPanic = errors.New("handler panicked")

// Middleware returns net/http middleware dispatching h.
func Middleware(h *hooks.Hooks) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{}
			ww := rec.wrap(w)

			ev := hooks.NewRequestEvent(r, rec.snapshot)
			h.CallRequest(ev)

			var abort bool
			func() {
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
					if !rec.written {
						http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					}
				}()
				next.ServeHTTP(ww, ev.Request())
			}()

			if err := ev.Err(); err != nil {
				h.CallError(ev, err)
			}
			h.CallAfterResponse(ev)

			if abort {
				panic(http.ErrAbortHandler)
			}
		})
	}
}

// Handle adapts fn to http.Handler. A returned error is answered with its
// HTTP status, or 500 for opaque errors, unless fn already wrote a response.
func Handle(fn func(w http.ResponseWriter, r *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		ev, ok := hooks.EventFromContext(r.Context())
		if ok {
			ev.Fail(err)
			if ev.Written() {
				return
			}
		}

		status := httperror.StatusOr(err, http.StatusInternalServerError)
		msg := http.StatusText(status)
		var herr *httperror.Error
		if errors.As(err, &herr) && herr.StatusMessage != "" {
			msg = herr.StatusMessage
		}
		http.Error(w, msg, status)
	})
}

// statusRecorder tracks the first final status written. It is used from the
// goroutine serving the request only.
type statusRecorder struct {
	status  int
	written bool
}

func (s *statusRecorder) header(code int) {
	// Informational responses other than 101 are followed by a final one.
	if s.written || (code < http.StatusOK && code != http.StatusSwitchingProtocols) {
		return
	}
	s.status, s.written = code, true
}

func (s *statusRecorder) snapshot() (int, bool) {
	return s.status, s.written
}

func (s *statusRecorder) wrap(w http.ResponseWriter) http.ResponseWriter {
	return httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				s.header(code)
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				s.header(http.StatusOK)
				return next(b)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				s.header(http.StatusOK)
				return next(src)
			}
		},
	})
}
