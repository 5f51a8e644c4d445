package frame

import "time"

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a controllable clock for tests and offline rendering.
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time { return c.current }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Millis converts the time elapsed since origin into a frame timestamp.
func Millis(origin, now time.Time) float64 {
	return float64(now.Sub(origin)) / float64(time.Millisecond)
}

// Interval returns the frame period for the given rate; rates below 1 fall
// back to 60 frames per second.
func Interval(fps int) time.Duration {
	if fps < 1 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
