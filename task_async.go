package deferred

import (
	"golang.org/x/sync/semaphore"
)

// Async submits work to executor, returning immediately with a Task that
// completes once work returns.
//
// If Cancel is called before work begins, work is never invoked and the
// task completes with a failure built from onCancel (or [CancellationError]
// if onCancel is nil). If work has already begun, cancellation is a
// best-effort no-op. The race between cancellation and the start of work
// is resolved by a single-consumer gate: a weight-1
// [golang.org/x/sync/semaphore.Weighted] that both sides attempt to
// acquire with TryAcquire. Exactly one side wins; the loser does nothing.
func Async[V any](executor Executor, onCancel func() error, work func() (V, error)) Task[V] {
	out := New[Result[V]]()
	gate := semaphore.NewWeighted(1)

	cancel := func() {
		if !gate.TryAcquire(1) {
			return // work already claimed the gate; best-effort no-op
		}
		var cerr error
		if onCancel != nil {
			cerr = onCancel()
		} else {
			cerr = &CancellationError{}
		}
		out.Promise().Fill(Err[V](cerr))
	}

	executor.Submit(func() {
		if !gate.TryAcquire(1) {
			return // cancellation already claimed the gate
		}
		defer func() {
			if r := recover(); r != nil {
				logRecoveredPanic("async", r)
				out.Promise().Fill(Err[V](PanicError{Value: r}))
			}
		}()
		v, err := work()
		if err != nil {
			out.Promise().Fill(Err[V](err))
			return
		}
		out.Promise().Fill(Ok(v))
	})

	return newTask(out.Future(), cancel)
}
