package effects

import (
	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// TiltCard leans a card toward the pointer while it hovers the card.
type TiltCard struct {
	offsetX, offsetY *motion.Value
	RotateX, RotateY *motion.Derived

	rect     func() input.Rect
	hovering bool
	scope    Scope
}

// OpenTiltCard watches the pointer over rect, given in viewport cells.
func OpenTiltCard(env Env, name string, rect func() input.Rect, cfg TiltSettings) *TiltCard {
	c := &TiltCard{
		offsetX: motion.NewValue(name+".offset.x", 0),
		offsetY: motion.NewValue(name+".offset.y", 0),
		rect:    rect,
	}
	c.RotateX = motion.Transform(c.offsetY, cfg.Domain, cfg.RotateX, motion.WithName(name+".rotate.x"))
	c.RotateY = motion.Transform(c.offsetX, cfg.Domain, cfg.RotateY, motion.WithName(name+".rotate.y"))
	c.scope.Own(c.RotateX)
	c.scope.Own(c.RotateY)
	c.scope.Defer(env.Events.OnPointerMove(c.move))
	c.scope.Defer(env.Events.OnPointerLeave(c.leave))
	return c
}

func (c *TiltCard) move(p input.Point) {
	r := c.rect()
	if !r.Contains(p) {
		if c.hovering {
			c.leave()
		}
		return
	}
	c.hovering = true
	center := r.Center()
	c.offsetX.Set(p.X - center.X)
	c.offsetY.Set(p.Y - center.Y)
}

func (c *TiltCard) leave() {
	c.hovering = false
	c.offsetX.Set(0)
	c.offsetY.Set(0)
}

// Hovering reports whether the pointer is over the card.
func (c *TiltCard) Hovering() bool { return c.hovering }

// Rotation returns the rotation about the x and y axes in degrees.
func (c *TiltCard) Rotation() (float64, float64) {
	return c.RotateX.Get(), c.RotateY.Get()
}

func (c *TiltCard) Close() { c.scope.Close() }
