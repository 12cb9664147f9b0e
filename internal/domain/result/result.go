// Package result holds the tagged Success/Error value returned by data source reads.
package result

// Status codes attached to generic failures. A not-found lookup carries no code.
const (
	CodeInternal    = 500
	CodeUnavailable = 503
)

// Result is either a Success carrying Data or an Error carrying a message and
// an optional status code. The zero value is an Error with an empty message.
type Result[T any] struct {
	data       T
	message    string
	statusCode *int
	ok         bool
}

// Success wraps data in the success variant.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

// Error builds the error variant without a status code.
func Error[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// ErrorWithCode builds the error variant with a status code.
func ErrorWithCode[T any](message string, statusCode int) Result[T] {
	return Result[T]{message: message, statusCode: &statusCode}
}

func (r Result[T]) IsSuccess() bool { return r.ok }

func (r Result[T]) IsError() bool { return !r.ok }

// Data returns the payload. It is the zero value for the error variant.
func (r Result[T]) Data() T { return r.data }

// Message returns the error message. It is empty for the success variant.
func (r Result[T]) Message() string { return r.message }

// StatusCode returns the optional status code of the error variant.
func (r Result[T]) StatusCode() (int, bool) {
	if r.statusCode == nil {
		return 0, false
	}
	return *r.statusCode, true
}

// Map converts the payload of a success, passing errors through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{message: r.message, statusCode: r.statusCode}
	}
	return Success(fn(r.data))
}
