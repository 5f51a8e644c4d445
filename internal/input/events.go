// Package input turns raw pointer, scroll and resize events into motion
// values. Listeners are acquired from an Events surface and released through
// the Release func it hands back; there is no other way to detach.
package input

// Release detaches a listener. It is safe to call more than once.
type Release func()

// Point is a position in viewport cells.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Viewport describes the visible area and the full document height.
type Viewport struct {
	Width          float64
	Height         float64
	DocumentHeight float64
}

// MaxScroll is the largest meaningful scroll offset.
func (v Viewport) MaxScroll() float64 {
	if m := v.DocumentHeight - v.Height; m > 0 {
		return m
	}
	return 0
}

// Rect is element geometry in document coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width && p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// Intersects reports whether any row of r is within the vertical band
// [top, top+height).
func (r Rect) Intersects(top, height float64) bool {
	return r.Top < top+height && r.Bottom() > top
}

// Shift moves r by dx, dy.
func (r Rect) Shift(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

type listener[T any] struct {
	fn     func(T)
	active bool
}

type listeners[T any] struct {
	items []*listener[T]
}

func (ls *listeners[T]) add(fn func(T)) Release {
	l := &listener[T]{fn: fn, active: true}
	ls.items = append(ls.items, l)
	return func() {
		if !l.active {
			return
		}
		l.active = false
		for i, other := range ls.items {
			if other == l {
				ls.items = append(ls.items[:i], ls.items[i+1:]...)
				return
			}
		}
	}
}

func (ls *listeners[T]) dispatch(v T) {
	snapshot := append([]*listener[T](nil), ls.items...)
	for _, l := range snapshot {
		if l.active {
			l.fn(v)
		}
	}
}

// Events is the observed surface. The owner feeds it raw events; effects
// listen to it.
type Events struct {
	pointer  listeners[Point]
	leave    listeners[struct{}]
	scroll   listeners[float64]
	resize   listeners[Viewport]
	last     Point
	offset   float64
	viewport Viewport
}

func NewEvents(vp Viewport) *Events {
	return &Events{viewport: vp}
}

func (e *Events) OnPointerMove(fn func(Point)) Release { return e.pointer.add(fn) }

// OnPointerLeave fires when the pointer leaves the surface entirely.
func (e *Events) OnPointerLeave(fn func()) Release {
	return e.leave.add(func(struct{}) { fn() })
}

func (e *Events) OnScroll(fn func(offset float64)) Release { return e.scroll.add(fn) }

func (e *Events) OnResize(fn func(Viewport)) Release { return e.resize.add(fn) }

func (e *Events) PointerMove(p Point) {
	e.last = p
	e.pointer.dispatch(p)
}

func (e *Events) PointerLeave() {
	e.leave.dispatch(struct{}{})
}

func (e *Events) Scroll(offset float64) {
	e.offset = offset
	e.scroll.dispatch(offset)
}

func (e *Events) Resize(vp Viewport) {
	e.viewport = vp
	e.resize.dispatch(vp)
}

// Pointer returns the last reported pointer position.
func (e *Events) Pointer() Point { return e.last }

// ScrollOffset returns the last reported scroll offset.
func (e *Events) ScrollOffset() float64 { return e.offset }

func (e *Events) Viewport() Viewport { return e.viewport }

// ListenerCount sums every live listener, for leak checks.
func (e *Events) ListenerCount() int {
	return len(e.pointer.items) + len(e.leave.items) + len(e.scroll.items) + len(e.resize.items)
}
