package deferred

// Future is a read-only handle to a Deferred cell. Many Futures may point
// at the same cell; they share identical observable behavior.
type Future[V any] struct {
	cell *deferredCell[V]
}

// Peek returns the value and true if filled, otherwise the zero value and
// false. Peek never blocks.
func (f Future[V]) Peek() (V, bool) { return f.cell.peek() }

// IsFilled reports whether the cell has been filled.
func (f Future[V]) IsFilled() bool { return f.cell.isFilled() }

// Wait blocks the calling goroutine until the cell is filled or t elapses,
// returning the value and whether it was observed. Wait is the only
// blocking method of Future.
func (f Future[V]) Wait(t Timeout) (V, bool) {
	deadline, bounded := t.Deadline()
	if !bounded {
		return f.cell.wait(deadline, true)
	}
	return f.cell.wait(deadline, false)
}

// Upon registers fn to run on executor after the cell fills. If already
// filled, fn is submitted immediately. Upon never blocks and has no
// timeout; race a timer Future via [First] to bound how long a consumer
// waits for it to fire.
func (f Future[V]) Upon(executor Executor, fn func(V)) {
	f.cell.upon(executor, fn)
}

// AnyFuture is a type-erased Future, for API boundaries that must hide the
// concrete value type (e.g. a heterogeneous fan-in). It forwards to the
// same underlying cell as the typed Future it was built from.
type AnyFuture struct {
	peek func() (any, bool)
	wait func(Timeout) (any, bool)
	upon func(Executor, func(any))
}

// Erase builds an AnyFuture that forwards to f.
func Erase[V any](f Future[V]) AnyFuture {
	return AnyFuture{
		peek: func() (any, bool) { return f.Peek() },
		wait: func(t Timeout) (any, bool) { return f.Wait(t) },
		upon: func(e Executor, fn func(any)) { f.Upon(e, func(v V) { fn(v) }) },
	}
}

// Peek returns the value and true if filled, otherwise the underlying
// type's zero value (as an any) and false.
func (a AnyFuture) Peek() (any, bool) { return a.peek() }

// Wait blocks until filled or t elapses.
func (a AnyFuture) Wait(t Timeout) (any, bool) { return a.wait(t) }

// Upon registers fn to run on executor after the underlying cell fills.
func (a AnyFuture) Upon(executor Executor, fn func(any)) { a.upon(executor, fn) }
