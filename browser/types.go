package browser

import (
	"errors"
	"fmt"
)

// Report sources.
const (
	SourceHandler = "handler"
	SourceApp     = "app"
)

var (
	ErrInvalidSource  = errors.New("source must be \"handler\" or \"app\"")
	ErrMissingMessage = errors.New("message is required")
)

// PublicConfig is the JSON document served by ConfigHandler. Field names
// follow the browser SDK's init options.
type PublicConfig struct {
	DSN                      string   `json:"dsn"`
	Release                  string   `json:"release,omitempty"`
	Environment              string   `json:"environment"`
	Debug                    bool     `json:"debug"`
	Integrations             []string `json:"integrations"`
	TracesSampleRate         *float64 `json:"tracesSampleRate,omitempty"`
	TracePropagationTargets  []string `json:"tracePropagationTargets,omitempty"`
	ReplaysSessionSampleRate *float64 `json:"replaysSessionSampleRate,omitempty"`
	ReplaysOnErrorSampleRate *float64 `json:"replaysOnErrorSampleRate,omitempty"`
	IgnoreStatusCodes        []int    `json:"ignoreStatusCodes"`
}

// ErrorReport is a frontend error posted to ErrorIntakeHandler.
type ErrorReport struct {
	Source     string                 `json:"source"`
	Name       string                 `json:"name"`
	Message    string                 `json:"message"`
	Stack      string                 `json:"stack,omitempty"`
	StatusCode int                    `json:"statusCode,omitempty"`
	URL        string                 `json:"url,omitempty"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

func (r *ErrorReport) validate() error {
	if r.Source != SourceHandler && r.Source != SourceApp {
		return fmt.Errorf("%w, got %q", ErrInvalidSource, r.Source)
	}
	if r.Message == "" {
		return ErrMissingMessage
	}
	return nil
}

// ClientError is the error reported to the backend for a frontend report.
type ClientError struct {
	Name       string
	Message    string
	StatusCode int
}

func (e *ClientError) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

// HTTPStatus returns the status the frontend saw, 0 when none.
func (e *ClientError) HTTPStatus() int {
	return e.StatusCode
}
