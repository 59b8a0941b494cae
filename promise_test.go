package deferred

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseFill(t *testing.T) {
	d := New[int]()
	p := d.Promise()

	require.True(t, p.Fill(42))
	v, ok := d.Future().Peek()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestPromiseFillOnlyOnce(t *testing.T) {
	d := New[int]()
	p := d.Promise()

	require.True(t, p.Fill(1))
	assert.False(t, p.Fill(2))

	v, _ := d.Future().Peek()
	assert.Equal(t, 1, v)
}

func TestPromiseTryFillIsFillAlias(t *testing.T) {
	d := New[string]()
	p := d.Promise()

	require.True(t, p.TryFill("first"))
	assert.False(t, p.TryFill("second"))
}

func TestPromiseMustFillPanicsOnSecondCall(t *testing.T) {
	d := New[int]()
	p := d.Promise()

	require.NotPanics(t, func() { p.MustFill(1) })
	assert.Panics(t, func() { p.MustFill(2) })
}

func TestPromiseIsFilled(t *testing.T) {
	d := New[int]()
	p := d.Promise()

	assert.False(t, p.IsFilled())
	p.Fill(1)
	assert.True(t, p.IsFilled())
}

// TestPromiseFanOut verifies every goroutine blocked in Wait on the same
// Future, before or racing with fill, observes the single filled value.
func TestPromiseFanOut(t *testing.T) {
	d := New[string]()
	const numSubscribers = 10

	var wg sync.WaitGroup
	wg.Add(numSubscribers)
	results := make([]string, numSubscribers)

	for i := range results {
		i := i
		go func() {
			defer wg.Done()
			v, ok := d.Future().Wait(Unbounded())
			require.True(t, ok)
			results[i] = v
		}()
	}

	d.Promise().Fill("success")
	wg.Wait()

	for i, res := range results {
		assert.Equal(t, "success", res, "subscriber %d", i)
	}
}

func TestPromiseConcurrentFillRace(t *testing.T) {
	d := New[int]()
	p := d.Promise()

	const writers = 32
	var wins AtomicCounter
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		i := i
		go func() {
			defer wg.Done()
			if p.Fill(i) {
				wins.Add(1, OrderAcqRel)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, wins.Load(OrderAcquire))
}
