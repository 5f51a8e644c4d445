package effects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreloaderFinishesOnceAfterDelay(t *testing.T) {
	p := NewPreloader(DefaultSettings().Preloader)
	finished, done := 0, 0
	p.OnFinish = func() { finished++ }
	p.OnDone = func() { done++ }
	require.Equal(t, 0, p.Percent())

	for i := 0; i < 100; i++ {
		p.Advance(30 * time.Millisecond)
	}
	assert.Equal(t, 100, p.Percent())
	assert.Equal(t, PreloaderLoading, p.State())
	assert.Zero(t, finished)

	p.Advance(499 * time.Millisecond)
	assert.Zero(t, finished, "notification must not fire before the delay")

	p.Advance(time.Millisecond)
	assert.Equal(t, 1, finished)
	assert.Equal(t, PreloaderExiting, p.State())

	p.Advance(300 * time.Millisecond)
	assert.InDelta(t, 0.5, p.Exit().Get(), 1e-9)
	assert.Zero(t, done)

	p.Advance(10 * time.Second)
	assert.Equal(t, PreloaderDone, p.State())
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, done)
	assert.Equal(t, 1.0, p.Exit().Get())

	p.Skip()
	p.Tick()
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, done)
	assert.Equal(t, "done", p.State().String())
}

func TestPreloaderLargeStepsStillCount(t *testing.T) {
	p := NewPreloader(DefaultSettings().Preloader)
	p.Advance(45 * time.Millisecond)
	assert.Equal(t, 1, p.Percent())
	p.Advance(15 * time.Millisecond)
	assert.Equal(t, 2, p.Percent())
	p.Advance(3 * time.Second)
	assert.Equal(t, 100, p.Percent())
}

func TestPreloaderSkip(t *testing.T) {
	p := NewPreloader(DefaultSettings().Preloader)
	finished, done := 0, 0
	p.OnFinish = func() { finished++ }
	p.OnDone = func() { done++ }
	p.Skip()
	assert.Equal(t, PreloaderDone, p.State())
	assert.Equal(t, 100, p.Percent())
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, done)
}
