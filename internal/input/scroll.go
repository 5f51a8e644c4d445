package input

import (
	"errors"
	"fmt"

	"github.com/bekirdag/folio/internal/motion"
)

// ErrInvalidAnchor is returned for anchor fractions outside [0, 1].
var ErrInvalidAnchor = errors.New("invalid scroll anchor")

// Anchor pins a point of the element to a point of the viewport, both as
// fractions of their heights. {0, 0} reads "element top meets viewport top".
type Anchor struct {
	Element  float64 `yaml:"element"`
	Viewport float64 `yaml:"viewport"`
}

// ScrollOffsets is the pair of anchors where progress is 0 and 1.
type ScrollOffsets struct {
	Start Anchor `yaml:"start"`
	End   Anchor `yaml:"end"`
}

// Common anchor pairs.
var (
	// element top at viewport top, until element bottom at viewport top
	OffsetsStartToEnd = ScrollOffsets{Start: Anchor{0, 0}, End: Anchor{1, 0}}
	// element top entering at viewport bottom, until bottom leaving at top
	OffsetsEnterToExit = ScrollOffsets{Start: Anchor{0, 1}, End: Anchor{1, 0}}
)

func (o ScrollOffsets) Validate() error {
	for _, a := range []Anchor{o.Start, o.End} {
		if a.Element < 0 || a.Element > 1 || a.Viewport < 0 || a.Viewport > 1 {
			return fmt.Errorf("%w: %+v", ErrInvalidAnchor, a)
		}
	}
	return nil
}

// ScrollOptions configures a ScrollTracker. Without a Target the tracker
// reports progress through the whole document.
type ScrollOptions struct {
	// Target returns the element geometry in document coordinates. It is
	// called on every recompute because layout may change.
	Target  func() Rect
	Offsets ScrollOffsets
	Name    string
}

// ScrollTracker publishes the raw scroll offset and a clamped progress.
type ScrollTracker struct {
	ScrollY  *motion.Value
	Progress *motion.Value

	events   *Events
	target   func() Rect
	offsets  ScrollOffsets
	releases []Release
	closed   bool
}

// TrackScroll listens to scroll and resize on events until Close.
func TrackScroll(events *Events, opts ScrollOptions) (*ScrollTracker, error) {
	if opts.Target != nil {
		if opts.Offsets == (ScrollOffsets{}) {
			opts.Offsets = OffsetsStartToEnd
		}
		if err := opts.Offsets.Validate(); err != nil {
			return nil, err
		}
	}
	name := opts.Name
	if name == "" {
		name = "scroll"
	}
	t := &ScrollTracker{
		ScrollY:  motion.NewValue(name+".y", events.ScrollOffset()),
		Progress: motion.NewValue(name+".progress", 0),
		events:   events,
		target:   opts.Target,
		offsets:  opts.Offsets,
	}
	t.Progress.Set(t.compute(events.ScrollOffset(), events.Viewport()))
	t.releases = append(t.releases,
		events.OnScroll(func(offset float64) { t.update(offset, t.events.Viewport()) }),
		events.OnResize(func(vp Viewport) { t.update(t.events.ScrollOffset(), vp) }),
	)
	return t, nil
}

func (t *ScrollTracker) update(offset float64, vp Viewport) {
	t.ScrollY.Set(offset)
	t.Progress.Set(t.compute(offset, vp))
}

func (t *ScrollTracker) compute(offset float64, vp Viewport) float64 {
	if t.target == nil {
		return GlobalProgress(offset, vp)
	}
	return ElementProgress(offset, vp, t.target(), t.offsets)
}

// Close detaches both listeners.
func (t *ScrollTracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	for _, release := range t.releases {
		release()
	}
}

// GlobalProgress is offset / (document − viewport), clamped to [0, 1]. A
// document that fits the viewport reports 0.
func GlobalProgress(offset float64, vp Viewport) float64 {
	limit := vp.MaxScroll()
	if limit <= 0 {
		return 0
	}
	return motion.Clamp01(offset / limit)
}

// AnchorOffset is the scroll offset at which the anchor's element point
// meets its viewport point.
func AnchorOffset(a Anchor, el Rect, vp Viewport) float64 {
	return el.Top + a.Element*el.Height - a.Viewport*vp.Height
}

// ElementProgress maps offset between the start and end anchors of el to
// [0, 1].
func ElementProgress(offset float64, vp Viewport, el Rect, o ScrollOffsets) float64 {
	start := AnchorOffset(o.Start, el, vp)
	end := AnchorOffset(o.End, el, vp)
	if end == start {
		if offset >= start {
			return 1
		}
		return 0
	}
	return motion.Clamp01((offset - start) / (end - start))
}
