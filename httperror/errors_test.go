package httperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type teapotErr struct{}

func (teapotErr) Error() string   { return "short and stout" }
func (teapotErr) HTTPStatus() int { return http.StatusTeapot }

func TestNew_DefaultsMessage(t *testing.T) {
	t.Parallel()
	err := New(http.StatusNotFound, "")
	assert.Equal(t, "Not Found", err.StatusMessage)
	assert.Equal(t, "404 Not Found", err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("row missing")
	err := Wrap(http.StatusNotFound, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "row missing")
}

func TestStatusCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		err    error
		code   int
		hasErr bool
	}{
		{"nil", nil, 0, false},
		{"opaque", errors.New("boom"), 0, false},
		{"direct", New(http.StatusUnprocessableEntity, ""), 422, true},
		{"wrapped", fmt.Errorf("handler: %w", New(http.StatusConflict, "")), 409, true},
		{"foreign carrier", fmt.Errorf("x: %w", teapotErr{}), 418, true},
		{"out of range", &Error{StatusCode: 42}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, ok := StatusCode(tc.err)
			assert.Equal(t, tc.hasErr, ok)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestStatusOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 503, StatusOr(New(503, ""), 500))
	assert.Equal(t, 500, StatusOr(errors.New("opaque"), 500))
}

func TestIgnoreList(t *testing.T) {
	t.Parallel()
	l := NewIgnoreList(404, 202)

	assert.True(t, l.Contains(404))
	assert.False(t, l.Contains(500))
	assert.True(t, l.Suppresses(New(404, "")))
	assert.False(t, l.Suppresses(New(500, "")))
	assert.False(t, l.Suppresses(errors.New("opaque")))

	var empty IgnoreList
	assert.False(t, empty.Suppresses(New(404, "")))
}
