package effects

import (
	"fmt"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// MagneticTarget is the displacement of an element centered at center
// toward pointer p.
func MagneticTarget(center, p input.Point, strength float64) input.Point {
	return input.Point{
		X: (p.X - center.X) * strength,
		Y: (p.Y - center.Y) * strength,
	}
}

// Magnetic pulls an element toward the pointer while the pointer is over it
// and springs it back on leave.
type Magnetic struct {
	X, Y *motion.Spring

	targetX, targetY *motion.Value
	rect             func() input.Rect
	strength         float64
	hovering         bool
	scope            Scope
}

// OpenMagnetic tracks the pointer over rect, given in viewport cells at
// rest (without the magnetic displacement).
func OpenMagnetic(env Env, name string, rect func() input.Rect, cfg MagneticSettings) (*Magnetic, error) {
	m := &Magnetic{
		targetX:  motion.NewValue(name+".target.x", 0),
		targetY:  motion.NewValue(name+".target.y", 0),
		rect:     rect,
		strength: cfg.Strength,
	}
	var err error
	if m.X, err = motion.NewSpring(env.Loop, m.targetX, cfg.Spring); err != nil {
		return nil, fmt.Errorf("magnetic %s: %w", name, err)
	}
	m.scope.Own(m.X)
	if m.Y, err = motion.NewSpring(env.Loop, m.targetY, cfg.Spring); err != nil {
		m.scope.Close()
		return nil, fmt.Errorf("magnetic %s: %w", name, err)
	}
	m.scope.Own(m.Y)
	m.scope.Defer(env.Events.OnPointerMove(m.move))
	m.scope.Defer(env.Events.OnPointerLeave(m.leave))
	return m, nil
}

func (m *Magnetic) move(p input.Point) {
	r := m.rect()
	if !r.Contains(p) {
		if m.hovering {
			m.leave()
		}
		return
	}
	m.hovering = true
	t := MagneticTarget(r.Center(), p, m.strength)
	m.targetX.Set(t.X)
	m.targetY.Set(t.Y)
}

func (m *Magnetic) leave() {
	m.hovering = false
	m.targetX.Set(0)
	m.targetY.Set(0)
}

// Target is the unsmoothed displacement.
func (m *Magnetic) Target() input.Point {
	return input.Point{X: m.targetX.Get(), Y: m.targetY.Get()}
}

// Offset is the smoothed displacement.
func (m *Magnetic) Offset() input.Point {
	return input.Point{X: m.X.Get(), Y: m.Y.Get()}
}

func (m *Magnetic) Hovering() bool { return m.hovering }

func (m *Magnetic) Close() { m.scope.Close() }
