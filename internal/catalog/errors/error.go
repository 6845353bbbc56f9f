// Package errors provides the error types shared by the catalog service layers.
package errors

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned by stores when no row matches.
var ErrProductNotFound = errors.New("product not found")

// NotFoundError carries the caller-facing message for a not-found condition.
// It unwraps to ErrProductNotFound so callers can match with errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrProductNotFound }

func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// BadRequestError reports a violated validation rule. Field keys the errors
// map in the problem envelope.
type BadRequestError struct {
	Field   string
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func BadRequest(field, format string, args ...any) *BadRequestError {
	return &BadRequestError{Field: field, Message: fmt.Sprintf(format, args...)}
}
