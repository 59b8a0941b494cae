// Package-level error taxonomy, following the cause-chain conventions
// (Unwrap/Is/As) used throughout the reference event-loop package this
// module grew out of.
package deferred

import (
	"errors"
	"fmt"
)

// ErrInvalidCompletionHandlerInput is produced by
// [ResultFromCompletionHandler] when both the value and the error are
// absent, mirroring a misbehaving host-platform completion handler.
var ErrInvalidCompletionHandlerInput = errors.New("deferred: completion handler supplied neither a value nor an error")

// CancellationError is the default failure value a [Task] created by
// [Async] completes with when its cancellation wins the race against the
// start of work.
type CancellationError struct {
	// Cause is an optional caller-supplied reason for the cancellation.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	if e.Cause == nil {
		return "deferred: task cancelled"
	}
	return fmt.Sprintf("deferred: task cancelled: %s", e.Cause.Error())
}

// Unwrap returns Cause for use with [errors.Is] and [errors.As].
func (e *CancellationError) Unwrap() error { return e.Cause }

// PanicError wraps a value recovered from a panic inside a combinator or
// task body, so that it can flow through a [Result] as an ordinary error.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("deferred: recovered panic: %v", e.Value)
}

// Unwrap returns the panic value if it was itself an error, enabling
// [errors.Is] and [errors.As] to see through the recovery.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// TimeoutError is the failure value [TaskTimeout] produces when its
// deadline elapses before the wrapped Task settles.
type TimeoutError struct {
	// Timeout is the deadline that elapsed.
	Timeout Timeout
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return "deferred: task timed out"
}

// AggregateError collects every failure observed by a caller-assembled
// combinator that waits on more than one input and must report them all,
// rather than fail fast on the first (unlike [AndSuccess], which is
// fail-fast by design; see its doc comment).
type AggregateError struct {
	Errors []error
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "deferred: aggregate error (empty)"
	}
	return fmt.Sprintf("deferred: %d error(s), first: %s", len(e.Errors), e.Errors[0].Error())
}

// Unwrap returns the wrapped errors for multi-error unwrapping.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// Is reports true for any target that is itself an *AggregateError.
// Matches against the wrapped errors are found by [errors.Is] through
// Unwrap, not by this method.
func (e *AggregateError) Is(target error) bool {
	var other *AggregateError
	return errors.As(target, &other)
}
