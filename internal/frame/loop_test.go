package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsScheduledCallbackOnce(t *testing.T) {
	loop := NewLoop()
	var stamps []float64
	loop.Schedule(func(ts float64) { stamps = append(stamps, ts) })

	assert.Equal(t, 1, loop.Tick(16))
	assert.Equal(t, 0, loop.Tick(32))
	assert.Equal(t, []float64{16}, stamps)
	assert.False(t, loop.Active())
}

func TestLoopReschedulingRunsOnNextTick(t *testing.T) {
	loop := NewLoop()
	calls := 0
	var step Callback
	step = func(ts float64) {
		calls++
		loop.Schedule(step)
	}
	loop.Schedule(step)

	for i := 1; i <= 5; i++ {
		loop.Tick(float64(i) * 16)
	}
	assert.Equal(t, 5, calls)
	assert.Equal(t, 1, loop.Pending())
}

func TestLoopCancel(t *testing.T) {
	loop := NewLoop()
	ran := false
	h := loop.Schedule(func(float64) { ran = true })
	loop.Cancel(h)
	loop.Tick(16)
	assert.False(t, ran)

	// cancelling from inside an earlier callback of the same frame
	var second Handle
	loop.Schedule(func(float64) { loop.Cancel(second) })
	second = loop.Schedule(func(float64) { ran = true })
	assert.Equal(t, 1, loop.Tick(32))
	assert.False(t, ran)
}

func TestLoopOrderFollowsRegistration(t *testing.T) {
	loop := NewLoop()
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		loop.Schedule(func(float64) { order = append(order, i) })
	}
	loop.Tick(1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestClosedLoopRunsNothing(t *testing.T) {
	loop := NewLoop()
	ran := 0
	loop.Schedule(func(float64) { ran++ })
	loop.Close()

	assert.Equal(t, Handle(0), loop.Schedule(func(float64) { ran++ }))
	assert.Equal(t, 0, loop.Tick(16))
	assert.Equal(t, 0, ran)
	assert.True(t, loop.Closed())
}

func TestSlotKeepsSingleRegistration(t *testing.T) {
	loop := NewLoop()
	slot := loop.Slot()
	first, second := 0, 0
	slot.Request(func(float64) { first++ })
	slot.Request(func(float64) { second++ })
	require.Equal(t, 1, loop.Pending())
	require.True(t, slot.Pending())

	loop.Tick(16)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.False(t, slot.Pending())

	slot.Request(func(float64) { second++ })
	slot.Cancel()
	loop.Tick(32)
	assert.Equal(t, 1, second)
}

func TestManualClockMillis(t *testing.T) {
	origin := time.Unix(0, 0)
	clock := NewManualClock(origin)
	clock.Advance(30 * time.Millisecond)
	assert.InDelta(t, 30.0, Millis(origin, clock.Now()), 1e-9)
	assert.Equal(t, time.Second/60, Interval(0))
	assert.Equal(t, time.Second/30, Interval(30))
}
