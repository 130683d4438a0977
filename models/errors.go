package models

import "errors"

// ErrorType classifies application errors so the transport layer can map
// them to status codes without string matching.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "ValidationError"
	ErrorTypeConflict     ErrorType = "ConflictError"
	ErrorTypeNotFound     ErrorType = "NotFoundError"
	ErrorTypeInvalidState ErrorType = "InvalidStateError"
	ErrorTypeStorage      ErrorType = "StorageError"
)

// AppError is the typed error returned by every core operation.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: msg}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: msg}
}

func NewInvalidStateError(msg string) *AppError {
	return &AppError{Type: ErrorTypeInvalidState, Message: msg}
}

func NewStorageError(msg string, err error) *AppError {
	return &AppError{Type: ErrorTypeStorage, Message: msg, Err: err}
}

// TypeOf returns the error's classification, defaulting unknown errors
// to StorageError so they surface as 500s.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeStorage
}

// IsType reports whether err carries the given classification.
func IsType(err error, t ErrorType) bool {
	return TypeOf(err) == t
}
