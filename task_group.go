package deferred

import "sync"

// AndSuccess runs tasks to completion and succeeds with every value, in
// input order, once all tasks succeed. The first failure observed cancels
// every other task; because the underlying cell is write-once, whichever
// failure's fill wins the race is the one the returned Task reports, so
// under concurrent failures the one observed is effectively arbitrary but
// singular. AndSuccess deliberately reports fail-fast rather than waiting
// for cancelled siblings to settle before reporting: a cancelled task is
// not guaranteed to ever fill its Future (cancellation is advisory), so
// waiting for every sibling to settle before reporting could block forever.
// Callers that need every failure a group of tasks produced, including
// ones that race in after cancellation, can collect them with their own
// [AggregateError] instead.
//
// AndSuccess(nil) and AndSuccess of an empty slice succeed immediately
// with an empty slice.
func AndSuccess[V any](tasks []Task[V]) Task[[]V] {
	if len(tasks) == 0 {
		return TaskValue[[]V](nil)
	}

	out := New[Result[[]V]]()
	results := make([]V, len(tasks))
	var remaining AtomicCounter
	remaining.Store(int64(len(tasks)), OrderRelaxed)

	var cancelOnce sync.Once
	cancelRest := func() {
		cancelOnce.Do(func() {
			for _, t := range tasks {
				t.Cancel()
			}
		})
	}

	for i, t := range tasks {
		i, t := i, t
		t.Future().Upon(ImmediateExecutor{}, func(r Result[V]) {
			if !r.IsSuccess() {
				cancelRest()
				out.Promise().Fill(Err[[]V](r.Error()))
				return
			}
			results[i] = r.Value()
			if remaining.Add(-1, OrderAcqRel) == 0 {
				out.Promise().Fill(Ok(results))
			}
		})
	}

	return newTask(out.Future(), cancelRest)
}
