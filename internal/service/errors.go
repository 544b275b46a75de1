package service

import "fmt"

// KaalServiceError is a custom error type for service-layer failures. It
// names the operation so callers see where a wrapped domain error surfaced.
type KaalServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for KaalServiceError.
func (e *KaalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kaal service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("kaal service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *KaalServiceError) Unwrap() error {
	return e.Err
}

// NewKaalServiceError creates a new KaalServiceError.
func NewKaalServiceError(operation, message string, err error) *KaalServiceError {
	return &KaalServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
