package errors

import (
	"errors"
	"fmt"
)

// Custom application errors
var (
	ErrReminderNotFound  = errors.New("reminder not found")                // Reminder lookup by ID found nothing
	ErrUserNotFound      = errors.New("subscriber not found")              // Subscriber lookup found nothing
	ErrValidation        = errors.New("validation failed")                 // Request or entered data is invalid
	ErrDatabaseOperation = errors.New("database operation failed")         // Generic database error
	ErrLineAPI           = errors.New("LINE API request failed")           // Generic LINE API error
	ErrScheduling        = errors.New("scheduling failed")                 // Generic scheduling error
	ErrDispatcherClosed  = errors.New("dispatcher is closed")              // Work submitted after shutdown
	ErrInternalServer    = errors.New("an internal server error occurred") // Generic internal error
)

// ValidationError describes a single rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}
