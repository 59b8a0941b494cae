package deferred

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateExecutorRunsSynchronously(t *testing.T) {
	var ran bool
	ImmediateExecutor{}.Submit(func() { ran = true })
	assert.True(t, ran)
}

func TestImmediateExecutorSubmitCancellableSkipsWhenCancelled(t *testing.T) {
	var ran bool
	ImmediateExecutor{}.SubmitCancellable(CancellableWork{
		Fn:          func() { ran = true },
		IsCancelled: func() bool { return true },
	})
	assert.False(t, ran)
}

func TestSerialExecutorRunsInOrder(t *testing.T) {
	e, err := NewSerialExecutor()
	require.NoError(t, err)
	defer e.Close()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		i := i
		e.Submit(func() {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	wg.Wait()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestSerialExecutorRecoversPanicAndKeepsRunning(t *testing.T) {
	e, err := NewSerialExecutor()
	require.NoError(t, err)
	defer e.Close()

	done := make(chan struct{})
	e.Submit(func() { panic("boom") })
	e.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("executor stalled after a panicking task")
	}
}

func TestSerialExecutorRejectsNegativeQueueCapacity(t *testing.T) {
	_, err := NewSerialExecutor(WithQueueCapacity(-1))
	assert.Error(t, err)
}

func TestSerialExecutorCloseDrainsQueue(t *testing.T) {
	e, err := NewSerialExecutor(WithQueueCapacity(4))
	require.NoError(t, err)

	var count AtomicCounter
	for i := 0; i < 4; i++ {
		e.Submit(func() { count.Add(1, OrderAcqRel) })
	}
	require.NoError(t, e.Close())
	assert.EqualValues(t, 4, count.Load(OrderAcquire))
}

func TestPoolExecutorRunsSubmittedWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := NewPoolExecutor(ctx, WithFixedWorkers(2))

	done := make(chan struct{})
	pool.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool executor never ran submitted work")
	}
}

func TestPoolExecutorSubmitCancellableSkipsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := NewPoolExecutor(ctx)
	var ran bool
	done := make(chan struct{})

	pool.SubmitCancellable(CancellableWork{
		Fn:          func() { ran = true },
		IsCancelled: func() bool { return true },
	})
	pool.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool executor stalled")
	}
	assert.False(t, ran)
}
