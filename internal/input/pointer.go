package input

import "github.com/bekirdag/folio/internal/motion"

// PointerOptions configures a PointerTracker.
type PointerOptions struct {
	// Bias is added to every sample, e.g. to center a glyph on the pointer.
	Bias Point
	Name string
}

// PointerTracker republishes pointer coordinates as motion values.
type PointerTracker struct {
	X, Y    *motion.Value
	bias    Point
	release Release
	closed  bool
}

// TrackPointer subscribes to pointer movement on events. The subscription
// lives until Close.
func TrackPointer(events *Events, opts PointerOptions) *PointerTracker {
	name := opts.Name
	if name == "" {
		name = "pointer"
	}
	last := events.Pointer()
	t := &PointerTracker{
		X:    motion.NewValue(name+".x", last.X+opts.Bias.X),
		Y:    motion.NewValue(name+".y", last.Y+opts.Bias.Y),
		bias: opts.Bias,
	}
	t.release = events.OnPointerMove(t.sample)
	return t
}

func (t *PointerTracker) sample(p Point) {
	t.X.Set(p.X + t.bias.X)
	t.Y.Set(p.Y + t.bias.Y)
}

// Close removes the listener. Later calls do nothing.
func (t *PointerTracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.release()
}
