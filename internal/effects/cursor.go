package effects

import (
	"fmt"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// Cursor is a glyph that trails the pointer on a spring.
type Cursor struct {
	X, Y  *motion.Spring
	scope Scope
}

func OpenCursor(env Env, cfg CursorSettings) (*Cursor, error) {
	c := &Cursor{}
	tracker := input.TrackPointer(env.Events, input.PointerOptions{Bias: cfg.Bias, Name: "cursor"})
	c.scope.Own(tracker)

	var err error
	if c.X, err = motion.NewSpring(env.Loop, tracker.X, cfg.Spring); err != nil {
		c.scope.Close()
		return nil, fmt.Errorf("cursor: %w", err)
	}
	c.scope.Own(c.X)
	if c.Y, err = motion.NewSpring(env.Loop, tracker.Y, cfg.Spring); err != nil {
		c.scope.Close()
		return nil, fmt.Errorf("cursor: %w", err)
	}
	c.scope.Own(c.Y)
	return c, nil
}

// Position is the smoothed glyph position in viewport cells.
func (c *Cursor) Position() input.Point {
	return input.Point{X: c.X.Get(), Y: c.Y.Get()}
}

func (c *Cursor) Close() { c.scope.Close() }
