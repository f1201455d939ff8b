package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrItemNotInCart is the store-level signal for mutating a line that does
// not exist. Usecases translate it into a NotFound AppError with context.
var ErrItemNotInCart = errors.New("item not in cart")

// ErrorKind enumerates the closed set of operational error categories. The
// conversion boundary in the delivery layer switches over it exhaustively.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindNotFound
	KindValidation
	KindInternal
)

// FieldError is one offending field in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError carries a kind, a human-readable message, and (for validation
// failures) the full list of offending fields. It is the only error type the
// delivery boundary knows how to render; anything else becomes KindInternal.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.cause }

// Status maps the kind to its HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func BadRequest(format string, args ...any) *AppError {
	return &AppError{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ValidationFailed(fields []FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func Internal(cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal Server Error", cause: cause}
}

// AsAppError normalizes any error to an *AppError, wrapping unknown errors
// as KindInternal so the boundary always has a status to write.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
