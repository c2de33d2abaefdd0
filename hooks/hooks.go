package hooks

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Logger is the subset of logger.Logger used to report panicking handlers.
type Logger interface {
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

type (
	// RequestHandler runs when a request arrives.
	RequestHandler func(ev *RequestEvent)
	// ErrorHandler runs when a request fails.
	ErrorHandler func(ev *RequestEvent, err error)
	// ResponseHandler runs after the response is complete.
	ResponseHandler func(ev *RequestEvent)
	// CloseHandler runs once at shutdown.
	CloseHandler func(ctx context.Context) error
)

// Hooks holds the ordered handler lists. The zero value is not usable; call New.
type Hooks struct {
	mu       sync.RWMutex
	request  []RequestHandler
	errs     []ErrorHandler
	response []ResponseHandler
	close    []CloseHandler

	closeOnce sync.Once
	closeErr  error

	logger Logger
}

// New returns an empty dispatcher. log may be nil.
func New(log Logger) *Hooks {
	return &Hooks{logger: log}
}

// OnRequest subscribes fn to the request event.
func (h *Hooks) OnRequest(fn RequestHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.request = append(h.request, fn)
}

// OnError subscribes fn to the error event.
func (h *Hooks) OnError(fn ErrorHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, fn)
}

// OnAfterResponse subscribes fn to the afterResponse event.
func (h *Hooks) OnAfterResponse(fn ResponseHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.response = append(h.response, fn)
}

// OnClose subscribes fn to the close event.
func (h *Hooks) OnClose(fn CloseHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.close = append(h.close, fn)
}

// CallRequest runs the request handlers.
func (h *Hooks) CallRequest(ev *RequestEvent) {
	h.mu.RLock()
	handlers := h.request
	h.mu.RUnlock()

	for _, fn := range handlers {
		h.guard(ev.Context(), "request", func() { fn(ev) })
	}
}

// CallError runs the error handlers. A nil err is ignored.
func (h *Hooks) CallError(ev *RequestEvent, err error) {
	if err == nil {
		return
	}
	h.mu.RLock()
	handlers := h.errs
	h.mu.RUnlock()

	for _, fn := range handlers {
		h.guard(ev.Context(), "error", func() { fn(ev, err) })
	}
}

// CallAfterResponse runs the afterResponse handlers.
func (h *Hooks) CallAfterResponse(ev *RequestEvent) {
	h.mu.RLock()
	handlers := h.response
	h.mu.RUnlock()

	for _, fn := range handlers {
		h.guard(ev.Context(), "afterResponse", func() { fn(ev) })
	}
}

// CallClose runs the close handlers exactly once; later calls return the
// first call's result. Every handler runs even if an earlier one fails.
func (h *Hooks) CallClose(ctx context.Context) error {
	h.closeOnce.Do(func() {
		h.mu.RLock()
		handlers := h.close
		h.mu.RUnlock()

		var errs []error
		for _, fn := range handlers {
			var err error
			h.guard(ctx, "close", func() { err = fn(ctx) })
			if err != nil {
				errs = append(errs, err)
			}
		}
		h.closeErr = errors.Join(errs...)
	})
	return h.closeErr
}

func (h *Hooks) guard(ctx context.Context, event string, fn func()) {
	defer func() {
		if r := recover(); r != nil && h.logger != nil {
			h.logger.ErrorWithContext(ctx, "lifecycle hook panicked", fmt.Errorf("%v", r), map[string]interface{}{
				"event": event,
			})
		}
	}()
	fn()
}
