package profiler

import "fmt"

// Error is the base interface for all profiler errors. Code returns a
// stable identifier for programmatic error handling.
type Error interface {
	error
	Code() string
}

type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// InvalidArgumentError reports a caller-supplied value outside the
// accepted set, such as an unknown order-by column.
type InvalidArgumentError struct {
	baseError
	Argument string
}

// NewInvalidArgumentError creates a new invalid argument error.
func NewInvalidArgumentError(argument, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		baseError: baseError{
			code:    "INVALID_ARGUMENT",
			message: message,
		},
		Argument: argument,
	}
}

// UnsupportedOperationError reports an operation applied at a point in the
// tracking lifecycle where it cannot take effect, such as excluding a
// callable that is already tracked.
type UnsupportedOperationError struct {
	baseError
	Target string
}

// NewUnsupportedOperationError creates a new unsupported operation error.
func NewUnsupportedOperationError(target, message string) *UnsupportedOperationError {
	return &UnsupportedOperationError{
		baseError: baseError{
			code:    "UNSUPPORTED_OPERATION",
			message: message,
		},
		Target: target,
	}
}
