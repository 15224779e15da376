package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors returned by Apply.
var ErrValidationFailed = errors.New("validation failed")
