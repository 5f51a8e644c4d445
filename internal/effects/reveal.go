package effects

import (
	"fmt"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// Reveal animates an element in the first time it enters the viewport. It
// never hides it again.
type Reveal struct {
	target    *motion.Value
	amount    *motion.Spring
	rect      func() input.Rect
	events    *input.Events
	listeners Scope
	scope     Scope
	shown     bool
}

// OpenReveal watches rect, given in document cells.
func OpenReveal(env Env, name string, rect func() input.Rect, cfg RevealSettings) (*Reveal, error) {
	r := &Reveal{
		target: motion.NewValue(name+".reveal", 0),
		rect:   rect,
		events: env.Events,
	}
	var err error
	if r.amount, err = motion.NewSpring(env.Loop, r.target, cfg.Spring); err != nil {
		return nil, fmt.Errorf("reveal %s: %w", name, err)
	}
	r.scope.Own(r.amount)
	r.scope.Own(&r.listeners)
	r.listeners.Defer(env.Events.OnScroll(func(float64) { r.check() }))
	r.listeners.Defer(env.Events.OnResize(func(input.Viewport) { r.check() }))
	r.check()
	return r, nil
}

func (r *Reveal) check() {
	if r.shown {
		return
	}
	vp := r.events.Viewport()
	if !r.rect().Intersects(r.events.ScrollOffset(), vp.Height) {
		return
	}
	r.shown = true
	r.listeners.Close()
	r.target.Set(1)
}

// Shown reports whether the element has entered the viewport.
func (r *Reveal) Shown() bool { return r.shown }

// Amount is the eased reveal in [0, 1] for damped springs.
func (r *Reveal) Amount() float64 { return r.amount.Get() }

func (r *Reveal) Close() { r.scope.Close() }
