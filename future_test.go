package deferred

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuturePeekAndIsFilled(t *testing.T) {
	d := New[int]()
	assert.False(t, d.Future().IsFilled())
	_, ok := d.Future().Peek()
	assert.False(t, ok)

	d.Promise().Fill(4)
	assert.True(t, d.Future().IsFilled())
	v, ok := d.Future().Peek()
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestFutureUponRunsOnceAfterFill(t *testing.T) {
	d := New[int]()
	var calls int
	var got int
	d.Future().Upon(ImmediateExecutor{}, func(v int) {
		calls++
		got = v
	})

	d.Promise().Fill(8)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 8, got)
}

func TestFutureUponFiresImmediatelyIfAlreadyFilled(t *testing.T) {
	d := Filled(3)
	var got int
	d.Future().Upon(ImmediateExecutor{}, func(v int) { got = v })
	assert.Equal(t, 3, got)
}

func TestAnyFutureErasesType(t *testing.T) {
	d := Filled("erased")
	any := Erase(d.Future())

	v, ok := any.Peek()
	require.True(t, ok)
	assert.Equal(t, "erased", v)

	got, ok := any.Wait(Bounded(time.Second))
	require.True(t, ok)
	assert.Equal(t, "erased", got)

	var uponVal any
	any.Upon(ImmediateExecutor{}, func(v any) { uponVal = v })
	assert.Equal(t, "erased", uponVal)
}
