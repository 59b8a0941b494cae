package deferred

import "sync"

// Void is the filled-with-nothing value used by [Ignore].
type Void struct{}

// Map returns a Future that, once source fills with v, schedules fn(v)
// on executor and fills the result with its return value.
func Map[V, W any](source Future[V], executor Executor, fn func(V) W) Future[W] {
	out := New[W]()
	source.Upon(executor, func(v V) {
		out.Promise().Fill(fn(v))
	})
	return out.Future()
}

// AndThen is like [Map], but fn returns a Future; the result adopts that
// inner Future's value (monadic bind).
func AndThen[V, W any](source Future[V], executor Executor, fn func(V) Future[W]) Future[W] {
	out := New[W]()
	source.Upon(executor, func(v V) {
		fn(v).Upon(ImmediateExecutor{}, func(w W) {
			out.Promise().Fill(w)
		})
	})
	return out.Future()
}

// Pair holds the two values produced by [And].
type Pair[A, B any] struct {
	First  A
	Second B
}

// And returns a Future filled with (v1, v2) once both a and b have
// filled. There is no fixed ordering between observing v1 and v2.
func And[A, B any](a Future[A], b Future[B]) Future[Pair[A, B]] {
	out := New[Pair[A, B]]()
	var mu sync.Mutex
	var av A
	var bv B
	var haveA, haveB bool

	tryFill := func() {
		mu.Lock()
		ready := haveA && haveB
		pair := Pair[A, B]{First: av, Second: bv}
		mu.Unlock()
		if ready {
			out.Promise().Fill(pair)
		}
	}

	a.Upon(ImmediateExecutor{}, func(v A) {
		mu.Lock()
		av, haveA = v, true
		mu.Unlock()
		tryFill()
	})
	b.Upon(ImmediateExecutor{}, func(v B) {
		mu.Lock()
		bv, haveB = v, true
		mu.Unlock()
		tryFill()
	})
	return out.Future()
}

// All returns a Future filled with every source's value, in input order,
// once all sources have filled. All(nil) and All of an empty slice are
// filled immediately with an empty slice (Testable property 6).
func All[V any](sources []Future[V]) Future[[]V] {
	if len(sources) == 0 {
		return Filled([]V{}).Future()
	}

	out := New[[]V]()
	results := make([]V, len(sources))
	var remaining AtomicCounter
	remaining.Store(int64(len(sources)), OrderRelaxed)

	for i, source := range sources {
		i := i
		source.Upon(ImmediateExecutor{}, func(v V) {
			results[i] = v
			if remaining.Add(-1, OrderAcqRel) == 0 {
				out.Promise().Fill(results)
			}
		})
	}
	return out.Future()
}

// First returns a Future filled with the value of whichever source fills
// first. Subsequent fills are ignored because the result cell is
// write-once; ties are broken by whichever fill's CAS wins, which in turn
// depends on scheduler order.
func First[V any](sources []Future[V]) Future[V] {
	out := New[V]()
	for _, source := range sources {
		source.Upon(ImmediateExecutor{}, func(v V) {
			out.Promise().Fill(v)
		})
	}
	return out.Future()
}

// Ignore returns a Future[Void] fulfilled when source is, discarding its
// value.
func Ignore[V any](source Future[V]) Future[Void] {
	return Map(source, ImmediateExecutor{}, func(V) Void { return Void{} })
}

// EveryView is a view over a Future that re-applies fn on every Upon
// call, rather than caching the transformed result in a new cell. Use it
// when fn is cheap and the goal is to avoid allocating an extra Deferred;
// unlike [Map], fn runs once per subscriber, not once total.
type EveryView[V, W any] struct {
	source Future[V]
	fn     func(V) W
}

// Every builds a view over source that applies fn on each subscription.
func Every[V, W any](source Future[V], fn func(V) W) EveryView[V, W] {
	return EveryView[V, W]{source: source, fn: fn}
}

// Peek applies fn to the source's value if filled.
func (e EveryView[V, W]) Peek() (W, bool) {
	if v, ok := e.source.Peek(); ok {
		return e.fn(v), true
	}
	var zero W
	return zero, false
}

// Upon registers fn's result to run on executor once source fills. Each
// call to Upon re-invokes the view's transform independently.
func (e EveryView[V, W]) Upon(executor Executor, fn func(W)) {
	e.source.Upon(executor, func(v V) {
		fn(e.fn(v))
	})
}
