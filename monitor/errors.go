package monitor

import "errors"

// ErrInvalidOptions is returned when the SDK rejects the client options,
// most commonly because the DSN cannot be parsed.
var ErrInvalidOptions = errors.New("invalid monitoring client options")
