package effects

import (
	"fmt"
	"math"

	"github.com/bekirdag/folio/internal/frame"
	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// longest frame gap integrated in one step, in milliseconds
const maxMarqueeDelta = 100.0

// Marquee scrolls a strip at a base speed and speeds up, or reverses, with
// the page's scroll velocity.
type Marquee struct {
	// X is the strip offset in percent, always inside the wrap interval.
	X *motion.Value

	cfg       MarqueeSettings
	velocity  *motion.Velocity
	smooth    *motion.Spring
	factor    *motion.Derived
	slot      *frame.Slot
	position  float64
	direction float64
	lastTS    float64
	scope     Scope
}

func OpenMarquee(env Env, cfg MarqueeSettings) (*Marquee, error) {
	if cfg.Wrap.From == cfg.Wrap.To {
		return nil, fmt.Errorf("marquee: empty wrap interval")
	}
	tracker, err := input.TrackScroll(env.Events, input.ScrollOptions{Name: "marquee"})
	if err != nil {
		return nil, fmt.Errorf("marquee: %w", err)
	}
	m := &Marquee{
		cfg:       cfg,
		slot:      env.Loop.Slot(),
		direction: 1,
		lastTS:    math.NaN(),
	}
	m.scope.Own(tracker)
	m.velocity = motion.NewVelocity(env.Loop, tracker.ScrollY)
	m.scope.Own(m.velocity)
	if m.smooth, err = motion.NewSpring(env.Loop, m.velocity.Value(), cfg.Spring); err != nil {
		m.scope.Close()
		return nil, fmt.Errorf("marquee: %w", err)
	}
	m.scope.Own(m.smooth)
	m.factor = motion.Transform(m.smooth.Value(), cfg.VelocityDomain, cfg.Boost, motion.WithName("marquee.factor"))
	m.scope.Own(m.factor)

	lo, hi := m.bounds()
	m.X = motion.NewValue("marquee.x", motion.Wrap(lo, hi, 0))
	m.scope.Defer(m.slot.Cancel)
	m.slot.Request(m.frame)
	return m, nil
}

func (m *Marquee) bounds() (float64, float64) {
	return math.Min(m.cfg.Wrap.From, m.cfg.Wrap.To), math.Max(m.cfg.Wrap.From, m.cfg.Wrap.To)
}

func (m *Marquee) frame(ts float64) {
	if m.scope.Closed() {
		return
	}
	delta := 1000.0 / 60
	if !math.IsNaN(m.lastTS) {
		delta = math.Min(ts-m.lastTS, maxMarqueeDelta)
	}
	m.lastTS = ts
	if delta > 0 {
		m.Advance(delta)
	}
	m.slot.Request(m.frame)
}

// Advance integrates delta milliseconds of motion.
func (m *Marquee) Advance(delta float64) {
	moveBy := m.direction * m.cfg.BaseVelocity * (delta / 1000)
	f := m.factor.Get()
	switch {
	case f < 0:
		m.direction = -1
	case f > 0:
		m.direction = 1
	}
	moveBy += m.direction * moveBy * f
	m.position += moveBy
	lo, hi := m.bounds()
	m.X.Set(motion.Wrap(lo, hi, m.position))
}

// Boost is the current velocity multiplier.
func (m *Marquee) Boost() float64 { return m.factor.Get() }

// Direction is +1 or -1.
func (m *Marquee) Direction() float64 { return m.direction }

func (m *Marquee) Close() { m.scope.Close() }
