// Package apperror carries typed application errors from the service layer
// to the terminal error-normalizing middleware, which is the single place
// that turns an error kind into an HTTP response.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	BadRequest
	Unauthorized
	Forbidden
	NotFound
	Conflict
)

// AppError pairs a client-safe message with an error kind. Err holds the
// underlying cause for logs only and is never serialized.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewBadRequest(message string, err error) *AppError {
	return New(BadRequest, message, err)
}

func NewUnauthorized(message string, err error) *AppError {
	return New(Unauthorized, message, err)
}

func NewForbidden(message string, err error) *AppError {
	return New(Forbidden, message, err)
}

func NewNotFound(message string, err error) *AppError {
	return New(NotFound, message, err)
}

func NewConflict(message string, err error) *AppError {
	return New(Conflict, message, err)
}

func NewInternal(message string, err error) *AppError {
	return New(Internal, message, err)
}

// IsKind reports whether any error in the chain is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
