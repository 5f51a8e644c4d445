package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalProgressClamped(t *testing.T) {
	vp := Viewport{Width: 80, Height: 40, DocumentHeight: 240}
	cases := map[float64]float64{
		-35: 0, // elastic overscroll above the top
		0:   0,
		100: 0.5,
		200: 1,
		260: 1, // overscroll below the end
	}
	for offset, want := range cases {
		assert.InDelta(t, want, GlobalProgress(offset, vp), 1e-12, "offset %v", offset)
	}
	assert.Zero(t, GlobalProgress(10, Viewport{Height: 40, DocumentHeight: 30}))
}

func TestElementProgressAnchors(t *testing.T) {
	vp := Viewport{Width: 80, Height: 40, DocumentHeight: 400}
	hero := Rect{Top: 0, Height: 40, Width: 80}

	assert.Equal(t, 0.0, ElementProgress(0, vp, hero, OffsetsStartToEnd))
	assert.InDelta(t, 0.5, ElementProgress(20, vp, hero, OffsetsStartToEnd), 1e-12)
	assert.Equal(t, 1.0, ElementProgress(40, vp, hero, OffsetsStartToEnd))
	assert.Equal(t, 1.0, ElementProgress(300, vp, hero, OffsetsStartToEnd))

	card := Rect{Top: 100, Height: 20}
	// enters when its top reaches the viewport bottom (offset 60), exits when
	// its bottom passes the viewport top (offset 120)
	assert.Equal(t, 0.0, ElementProgress(60, vp, card, OffsetsEnterToExit))
	assert.InDelta(t, 0.5, ElementProgress(90, vp, card, OffsetsEnterToExit), 1e-12)
	assert.Equal(t, 1.0, ElementProgress(120, vp, card, OffsetsEnterToExit))
}

func TestElementProgressDegenerateRange(t *testing.T) {
	vp := Viewport{Height: 40}
	flat := Rect{Top: 50}
	o := ScrollOffsets{Start: Anchor{0, 0}, End: Anchor{1, 0}}
	assert.Equal(t, 0.0, ElementProgress(49, vp, flat, o))
	assert.Equal(t, 1.0, ElementProgress(50, vp, flat, o))
}

func TestScrollTrackerRecomputesOnScrollAndResize(t *testing.T) {
	events := NewEvents(Viewport{Width: 80, Height: 40, DocumentHeight: 240})
	section := Rect{Top: 40, Height: 40}
	tracker, err := TrackScroll(events, ScrollOptions{
		Target: func() Rect { return section },
		Name:   "skills",
	})
	require.NoError(t, err)
	defer tracker.Close()

	events.Scroll(60)
	assert.Equal(t, 60.0, tracker.ScrollY.Get())
	assert.InDelta(t, 0.5, tracker.Progress.Get(), 1e-12)

	// layout grew: the section is now twice as tall
	section.Height = 80
	events.Resize(Viewport{Width: 60, Height: 40, DocumentHeight: 400})
	assert.InDelta(t, 0.25, tracker.Progress.Get(), 1e-12)
}

func TestScrollTrackerGlobalMode(t *testing.T) {
	events := NewEvents(Viewport{Width: 80, Height: 40, DocumentHeight: 140})
	tracker, err := TrackScroll(events, ScrollOptions{})
	require.NoError(t, err)

	var seen []float64
	tracker.Progress.Subscribe(func(p float64) { seen = append(seen, p) })
	events.Scroll(50)
	events.Scroll(150)
	events.Scroll(-20)
	assert.Equal(t, []float64{0.5, 1, 0}, seen)

	tracker.Close()
	tracker.Close()
	assert.Zero(t, events.ListenerCount())
	events.Scroll(75)
	assert.Len(t, seen, 3)
}

func TestScrollTrackerRejectsBadAnchors(t *testing.T) {
	events := NewEvents(Viewport{})
	_, err := TrackScroll(events, ScrollOptions{
		Target:  func() Rect { return Rect{} },
		Offsets: ScrollOffsets{Start: Anchor{Element: -0.5}, End: Anchor{Element: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAnchor))
	assert.Zero(t, events.ListenerCount())
}
