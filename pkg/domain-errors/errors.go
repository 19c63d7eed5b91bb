// Package domainerrors defines coded errors that cross layer boundaries.
//
// Services return these (optionally wrapping a cause) and the HTTP layer
// translates the code into a status via httputil.WriteError. Import it as
// dErrors:
//
//	import dErrors "curpcheck/pkg/domain-errors"
//
//	return dErrors.New(dErrors.CodeValidation, "curp is required")
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, client-visible error identifier.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_error"
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeRateLimited  Code = "rate_limited"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal_error"
)

// Error carries a Code, a client-safe message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to err. Wrapping nil returns nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CodeOf returns the code of the outermost *Error, or CodeInternal when err
// carries none.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}
