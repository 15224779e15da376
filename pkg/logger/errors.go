package logger

import "errors"

// ErrInvalidFormat is returned or panicked with for unknown output formats.
var ErrInvalidFormat = errors.New("invalid log format")
