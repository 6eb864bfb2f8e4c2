package errors

import "fmt"

// ErrorType classifies failures inside the data access layer.
type ErrorType string

const (
	// ErrorTypeTransport covers network errors and non-2xx responses from
	// the backend. Always recoverable through the mock fallback.
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeNotFound means the entity is absent on both the remote and
	// the mock path.
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeDecode means the backend answered but the payload could not
	// be parsed.
	ErrorTypeDecode ErrorType = "decode"
)

// AppError is a classified DAL error.
type AppError struct {
	Type     ErrorType
	Message  string
	Internal error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Internal.Error())
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewTransportError creates a transport-class error.
func NewTransportError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeTransport, Message: message, Internal: internal}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewDecodeError creates a payload-decoding error.
func NewDecodeError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeDecode, Message: message, Internal: internal}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == t
}
