// Package-level structured logging hook.
//
// Design decision: a package-level variable is appropriate here because
// logging is an infrastructure cross-cutting concern shared by every
// Deferred/Future/Task in a process, and threading a logger parameter
// through every combinator constructor would bloat their signatures for
// a concern most callers never touch. [logiface.Logger] is itself
// nil-safe (a nil *Logger silently no-ops on every call), so the default
// (unset) logger costs nothing beyond the pointer load.
package deferred

import (
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

var globalLogger atomic.Pointer[logiface.Logger[logiface.Event]]

// SetLogger installs the package-wide logger used to report dropped
// notifications (on [Deferred.Destroy]) and panics recovered inside
// combinators, Task bodies, and [SerialExecutor] tasks. The outcome of an
// [Async] cancellation race is not logged. Passing nil disables package
// logging, which is also the default.
func SetLogger(l *logiface.Logger[logiface.Event]) {
	globalLogger.Store(l)
}

func getLogger() *logiface.Logger[logiface.Event] {
	return globalLogger.Load()
}

func logDroppedNotifiers(count int) {
	if count == 0 {
		return
	}
	getLogger().Debug().
		Int("count", count).
		Log("deferred: dropped pending upon callbacks on destroy")
}

func logRecoveredPanic(category string, value any) {
	getLogger().Err().
		Str("category", category).
		Any("panic", value).
		Log("deferred: recovered panic, converting to failure")
}
