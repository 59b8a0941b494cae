// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package deferred provides a write-once value cell (Deferred) and a small
// algebra of combinators for composing asynchronous producers and consumers
// without callback pyramids.
//
// # Architecture
//
// A [Deferred] is created empty and filled at most once; its [Future] facet
// exposes only observation (Peek, Wait, Upon), and its [Promise] facet
// exposes only fulfillment (Fill, TryFill, MustFill). Combinators
// ([Map], [AndThen], [And], [All], [First], [Ignore], [Every]) build derived
// Futures without exposing the underlying storage.
//
// [Task] layers a [Result]-typed Future with a best-effort, idempotent
// cancellation handle, and its combinators ([TaskMap], [TaskAndThen],
// [Recover], [Fallback], [Repeat], [TaskTimeout], [AndSuccess]) propagate
// cancellation through chains. [CancelSource] and [BindTask] fan a single
// cancellation out to several Tasks at once.
//
// Callback delivery is decoupled from any specific thread or queue via the
// [Executor] interface; [ImmediateExecutor], [NewSerialExecutor], and
// [NewPoolExecutor] are the provided adapters.
//
// # Thread Safety
//
// Every exported type in this package is safe for concurrent use unless
// documented otherwise. Fill races are resolved under the cell's lock: at
// most one caller observes success.
//
// # Usage
//
//	d := deferred.New[int]()
//	go func() {
//	    d.Promise().Fill(42)
//	}()
//	v, ok := d.Future().Wait(deferred.Unbounded())
//
//	task := deferred.TaskMap(deferred.TaskValue(1), deferred.ImmediateExecutor{},
//	    func(v int) (int, error) { return v * 2, nil })
//	task = deferred.TaskAndThen(task, deferred.ImmediateExecutor{}, func(v int) deferred.Task[int] {
//	    return deferred.TaskValue(v + 1)
//	})
//
// # Error Types
//
// The package provides a small error taxonomy:
//   - [ErrInvalidCompletionHandlerInput]: produced by
//     [ResultFromCompletionHandler] when both value and error are absent.
//   - [CancellationError]: the default failure installed by [Async] when
//     cancellation wins the race against the start of work, and by
//     [CancelSource] when no explicit reason is given.
//   - [PanicError]: wraps a recovered panic from a combinator or task body.
//   - [TimeoutError]: the failure [TaskTimeout] installs when its deadline
//     elapses before the wrapped Task settles.
//   - [AggregateError]: a multi-error container available to callers that
//     assemble their own non-fail-fast fan-in over several Tasks.
//
// All error types implement the standard [error] interface.
// [CancellationError], [PanicError], and [AggregateError] also implement
// Unwrap, so [errors.Is] and [errors.As] see through them; [TimeoutError]
// wraps nothing.
package deferred
