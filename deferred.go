package deferred

import (
	"sync"
	"time"
)

// notifyEntry pairs an Executor with the closure to run on it once a cell
// is filled.
type notifyEntry[V any] struct {
	executor Executor
	fn       func(V)
}

// deferredCell is the write-once storage shared by every Future and
// Promise facet pointing at the same cell. It follows the "wide shape"
// from the design notes: a single atomic filled flag plus an adjacent
// value slot written before the flag is published. A mutex serializes the
// fill/destroy/upon critical sections so that registration and fill can
// never race past each other (I3); the atomic flag still makes Peek
// lock-free in the common case (Testable property 4).
type deferredCell[V any] struct {
	mu        sync.Mutex
	filled    AtomicBool
	destroyed bool
	value     V
	done      chan struct{} // closed exactly once, at fill or destroy
	notifiers []notifyEntry[V]
}

func newDeferredCell[V any]() *deferredCell[V] {
	return &deferredCell[V]{done: make(chan struct{})}
}

func newFilledDeferredCell[V any](v V) *deferredCell[V] {
	c := &deferredCell[V]{done: make(chan struct{}), value: v}
	c.filled.Store(true, OrderRelease)
	close(c.done)
	return c
}

// peek is the lock-free acquire-load read path.
func (c *deferredCell[V]) peek() (V, bool) {
	if c.filled.Load(OrderAcquire) {
		return c.value, true
	}
	var zero V
	return zero, false
}

func (c *deferredCell[V]) isFilled() bool { return c.filled.Load(OrderAcquire) }

// fill is the single successful-write linearization point. Concurrent
// fills race on the guarded check; exactly one observes the cell empty
// and performs the transition, matching Testable property 1.
func (c *deferredCell[V]) fill(v V) bool {
	if c.filled.Load(OrderAcquire) {
		return false
	}
	c.mu.Lock()
	if c.filled.Load(OrderRelaxed) || c.destroyed {
		c.mu.Unlock()
		return false
	}
	c.value = v
	c.filled.Store(true, OrderRelease)
	notifiers := c.notifiers
	c.notifiers = nil
	close(c.done)
	c.mu.Unlock()

	for _, n := range notifiers {
		n := n
		n.executor.Submit(func() { n.fn(v) })
	}
	return true
}

// destroy releases the cell without a value. Pending waiters observe
// empty; pending callbacks are dropped without invocation (I4). Filling
// after destroy is a no-op.
func (c *deferredCell[V]) destroy() {
	c.mu.Lock()
	if c.filled.Load(OrderRelaxed) || c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	dropped := len(c.notifiers)
	c.notifiers = nil
	close(c.done)
	c.mu.Unlock()

	logDroppedNotifiers(dropped)
}

// wait blocks until filled, destroyed, or deadline elapses (unless
// unbounded is true, in which case deadline is ignored), returning the
// value and whether it was actually observed.
func (c *deferredCell[V]) wait(deadline time.Time, unbounded bool) (V, bool) {
	if v, ok := c.peek(); ok {
		return v, true
	}
	if unbounded {
		<-c.done
		return c.peek()
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return c.peek()
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-c.done:
	case <-timer.C:
	}
	return c.peek()
}

// upon registers fn to run on executor once the cell is filled. If
// already filled, fn is submitted immediately without taking the lock.
// Registration is the linearization point described in spec §4.D: the
// lock-guarded re-check closes the window between the optimistic peek and
// a concurrent fill.
func (c *deferredCell[V]) upon(executor Executor, fn func(V)) {
	if v, ok := c.peek(); ok {
		executor.Submit(func() { fn(v) })
		return
	}

	c.mu.Lock()
	if c.filled.Load(OrderRelaxed) {
		v := c.value
		c.mu.Unlock()
		executor.Submit(func() { fn(v) })
		return
	}
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.notifiers = append(c.notifiers, notifyEntry[V]{executor: executor, fn: fn})
	c.mu.Unlock()
}

// Deferred is the write-once value cell. The zero value is not usable;
// construct one with [New] or [Filled].
type Deferred[V any] struct {
	cell *deferredCell[V]
}

// New creates an empty Deferred.
func New[V any]() Deferred[V] {
	return Deferred[V]{cell: newDeferredCell[V]()}
}

// Filled creates a Deferred that is already filled with v.
func Filled[V any](v V) Deferred[V] {
	return Deferred[V]{cell: newFilledDeferredCell(v)}
}

// Future returns the read-only facet of this cell.
func (d Deferred[V]) Future() Future[V] { return Future[V]{cell: d.cell} }

// Promise returns the write-only facet of this cell.
func (d Deferred[V]) Promise() Promise[V] { return Promise[V]{cell: d.cell} }

// Destroy releases the cell with no value. Any Future blocked in Wait
// observes empty; any Upon callback not yet scheduled is dropped without
// invocation. A subsequent Fill has no effect.
func (d Deferred[V]) Destroy() { d.cell.destroy() }
