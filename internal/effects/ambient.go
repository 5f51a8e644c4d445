package effects

import (
	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// Ambient places a radial glow under the pointer. The center is published
// as fractions of the viewport so renderers of any size can use it.
type Ambient struct {
	tracker *input.PointerTracker
	cx, cy  *motion.Derived
	scope   Scope
}

func OpenAmbient(env Env) *Ambient {
	a := &Ambient{tracker: input.TrackPointer(env.Events, input.PointerOptions{Name: "ambient"})}
	a.scope.Own(a.tracker)
	a.bind(env.Events.Viewport())
	a.scope.Defer(env.Events.OnResize(a.bind))
	a.scope.Defer(a.unbind)
	return a
}

func (a *Ambient) bind(vp input.Viewport) {
	a.unbind()
	a.cx = motion.Transform(a.tracker.X, motion.Span(0, vp.Width), motion.Span(0, 1), motion.WithClamp(), motion.WithName("ambient.cx"))
	a.cy = motion.Transform(a.tracker.Y, motion.Span(0, vp.Height), motion.Span(0, 1), motion.WithClamp(), motion.WithName("ambient.cy"))
}

func (a *Ambient) unbind() {
	if a.cx != nil {
		a.cx.Close()
		a.cy.Close()
	}
}

// Center returns the glow center as viewport fractions.
func (a *Ambient) Center() (float64, float64) {
	return a.cx.Get(), a.cy.Get()
}

func (a *Ambient) Close() { a.scope.Close() }
