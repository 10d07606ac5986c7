package apperrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates a result mismatch between engines.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Error classes for the arithmetic core. Every failure an engine, the decimal
// kernel, or the digit codec can produce belongs to exactly one of these
// classes. They are raised at the point of detection and propagate to the
// immediate caller; nothing in the core catches or retries them.
var (
	// InvalidFormat reports a decimal string that failed validation during
	// construction.
	InvalidFormat = errs.Class("invalid format")

	// DivideByZero reports a division or modulo with a zero divisor.
	DivideByZero = errs.Class("divide by zero")

	// Overflow reports a conversion to a native integer type whose width
	// cannot hold the stored value.
	Overflow = errs.Class("overflow")

	// Domain reports an argument outside an operation's domain, such as the
	// square root of a negative value.
	Domain = errs.Class("domain error")

	// RadixViolation reports a factoradic digit value exceeding its
	// positional index.
	RadixViolation = errs.Class("radix violation")

	// IndexRange reports a digit index beyond the maximum the codec
	// supports, or a bounds failure while addressing packed storage.
	IndexRange = errs.Class("index out of range")

	// Magnitude reports a magnitude subtraction whose minuend is smaller
	// than its subtrahend.
	Magnitude = errs.Class("magnitude error")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MismatchError reports that two engines disagreed on the result of the same
// operation over the same operands.
type MismatchError struct {
	// Op is the operation that produced inconsistent results.
	Op string
	// Binary is the binary engine's decimal rendering of the result.
	Binary string
	// Factorial is the factorial engine's decimal rendering of the result.
	Factorial string
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("engine mismatch for %q: binary=%s factorial=%s", e.Op, e.Binary, e.Factorial)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
