package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bekirdag/folio/internal/input"
)

func TestAmbientCenterFollowsPointer(t *testing.T) {
	env := newEnv(input.Viewport{Width: 100, Height: 50})
	glow := OpenAmbient(env)

	env.Events.PointerMove(input.Point{X: 25, Y: 50})
	cx, cy := glow.Center()
	assert.InDelta(t, 0.25, cx, 1e-12)
	assert.InDelta(t, 1.0, cy, 1e-12)

	env.Events.Resize(input.Viewport{Width: 200, Height: 100})
	env.Events.PointerMove(input.Point{X: 100, Y: 25})
	cx, cy = glow.Center()
	assert.InDelta(t, 0.5, cx, 1e-12)
	assert.InDelta(t, 0.25, cy, 1e-12)

	glow.Close()
	assert.Zero(t, env.Events.ListenerCount())
}
