package httperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that maps to an HTTP response status.
type Error struct {
	// StatusCode is the HTTP status sent to the client.
	StatusCode int

	// StatusMessage is a short, client-safe description.
	StatusMessage string

	// Cause is the underlying error, if any.
	Cause error

	// Data is optional structured detail returned to the client.
	Data map[string]interface{}
}

// New returns an *Error with the given status and message. An empty message
// defaults to the standard status text.
func New(status int, msg string) *Error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{StatusCode: status, StatusMessage: msg}
}

// Wrap returns an *Error with the given status whose cause is err.
func Wrap(status int, err error) *Error {
	e := New(status, "")
	e.Cause = err
	return e
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.StatusMessage, e.Cause)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.StatusMessage)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus reports the status code.
func (e *Error) HTTPStatus() int {
	return e.StatusCode
}

type statusCarrier interface {
	HTTPStatus() int
}

// StatusCode returns the status carried by err, if any. Status codes outside
// 100-599 are treated as absent.
func StatusCode(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var carrier statusCarrier
	if !errors.As(err, &carrier) {
		return 0, false
	}
	code := carrier.HTTPStatus()
	if code < 100 || code > 599 {
		return 0, false
	}
	return code, true
}

// StatusOr returns the status carried by err, or fallback.
func StatusOr(err error, fallback int) int {
	if code, ok := StatusCode(err); ok {
		return code
	}
	return fallback
}
