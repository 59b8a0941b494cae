package deferred_test

import (
	"fmt"
	"sync"

	"github.com/arcflow-dev/deferred"
)

// Example_fillAndPeek demonstrates the basic write-once contract: a
// Deferred starts empty, and Peek reports whether a value has landed yet.
func Example_fillAndPeek() {
	d := deferred.New[int]()

	if _, ok := d.Future().Peek(); !ok {
		fmt.Println("not yet filled")
	}

	d.Promise().Fill(42)

	v, ok := d.Future().Peek()
	fmt.Printf("filled: %v, value: %d\n", ok, v)

	// Output:
	// not yet filled
	// filled: true, value: 42
}

// Example_all demonstrates waiting for every Future in a slice to settle.
func Example_all() {
	a := deferred.New[int]()
	b := deferred.New[int]()
	c := deferred.New[int]()

	go func() {
		a.Promise().Fill(1)
		b.Promise().Fill(2)
		c.Promise().Fill(3)
	}()

	combined := deferred.All([]deferred.Future[int]{a.Future(), b.Future(), c.Future()})
	values, _ := combined.Wait(deferred.Unbounded())
	fmt.Println(values)

	// Output:
	// [1 2 3]
}

// Example_first demonstrates racing several Futures and taking whichever
// fills first.
func Example_first() {
	fast := deferred.New[string]()
	slow := deferred.New[string]()

	fast.Promise().Fill("fast wins")

	winner := deferred.First([]deferred.Future[string]{fast.Future(), slow.Future()})
	v, _ := winner.Wait(deferred.Unbounded())
	fmt.Println(v)

	// Output:
	// fast wins
}

// Example_taskChainWithRecover demonstrates composing a Task pipeline that
// fails partway through and recovers with a substitute value.
func Example_taskChainWithRecover() {
	task := deferred.TaskError[int](fmt.Errorf("upstream failed"))

	recovered := deferred.Recover(task, deferred.ImmediateExecutor{}, func(err error) int {
		fmt.Printf("recovering from: %v\n", err)
		return 0
	})

	doubled := deferred.TaskMap(recovered, deferred.ImmediateExecutor{}, func(v int) (int, error) {
		return v + 100, nil
	})

	r, _ := doubled.Wait(deferred.Unbounded())
	fmt.Println(r.Value())

	// Output:
	// recovering from: upstream failed
	// 100
}

// Example_andSuccess demonstrates gathering several Tasks into one Task
// that succeeds with every value, in order.
func Example_andSuccess() {
	tasks := []deferred.Task[int]{
		deferred.TaskValue(1),
		deferred.TaskValue(2),
		deferred.TaskValue(3),
	}

	group := deferred.AndSuccess(tasks)
	r, _ := group.Wait(deferred.Unbounded())
	fmt.Println(r.Value())

	// Output:
	// [1 2 3]
}

// Example_cancelSource demonstrates fanning one cancellation source out to
// several bound Tasks.
func Example_cancelSource() {
	source := deferred.NewCancelSource()

	var mu sync.Mutex
	var cancelled []string

	for _, name := range []string{"download", "upload"} {
		name := name
		task := deferred.TaskFromFuture(deferred.New[deferred.Result[int]]().Future(), func() {
			mu.Lock()
			cancelled = append(cancelled, name)
			mu.Unlock()
		})
		deferred.BindTask(source, task)
	}

	source.Cancel(fmt.Errorf("user requested stop"))

	mu.Lock()
	fmt.Println(len(cancelled))
	mu.Unlock()

	// Output:
	// 2
}
